package proto

import (
	"strconv"
	"strings"

	"github.com/octet-web/octet/http/status"
)

const scheme = "HTTP"

// Version is the protocol version of a request line: the <major>.<minor>
// pair of the HTTP/<major>.<minor> token.
type Version struct {
	Major, Minor int
}

var (
	HTTP10 = Version{1, 0}
	HTTP11 = Version{1, 1}
)

// Parse parses a version token of the strict form HTTP/<major>.<minor>,
// where both components are non-negative integers. Any deviation fails with
// a status.MalformedVersion diagnostic.
func Parse(token string) (Version, error) {
	parts := strings.Split(token, "/")
	if len(parts) != 2 {
		return Version{}, status.Errorf(status.MalformedVersion, "expected version of form HTTP/<major>.<minor>, got: %s", token)
	}

	if parts[0] != scheme {
		return Version{}, status.Errorf(status.MalformedVersion, "unsupported version scheme: %s", parts[0])
	}

	numbers := strings.Split(parts[1], ".")
	if len(numbers) != 2 {
		return Version{}, status.Errorf(status.MalformedVersion, "expected version format <int>.<int>, got: %s", parts[1])
	}

	major, err := parseVersionNumber(numbers[0])
	if err != nil {
		return Version{}, err
	}

	minor, err := parseVersionNumber(numbers[1])
	if err != nil {
		return Version{}, err
	}

	return Version{Major: major, Minor: minor}, nil
}

func parseVersionNumber(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, status.Errorf(status.MalformedVersion, "version component is not a non-negative integer: %s", raw)
	}

	return n, nil
}

func (v Version) String() string {
	return scheme + "/" + strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}
