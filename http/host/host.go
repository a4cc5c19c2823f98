package host

import (
	"strconv"
	"strings"

	"github.com/octet-web/octet/http/status"
)

// DefaultPort is applied whenever the wire form carries no explicit port.
const DefaultPort = 80

// Host is the value of a Host header (or a listen address): hostname plus
// an always-effective port.
type Host struct {
	Hostname string
	Port     int
}

// Parse parses the wire form hostname[:port]. At most one colon is allowed;
// the segment after it must be a non-negative integer, otherwise
// status.ErrInvalidPort is returned. More than one colon is
// status.ErrMalformedHost.
func Parse(wire string) (Host, error) {
	hostname, port, found := strings.Cut(wire, ":")
	if !found {
		return Host{Hostname: hostname, Port: DefaultPort}, nil
	}

	if strings.IndexByte(port, ':') != -1 {
		return Host{}, status.Errorf(status.MalformedHost, "expected hostname or hostname:port, got: %s", wire)
	}

	p, err := strconv.Atoi(port)
	if err != nil || p < 0 {
		return Host{}, status.Errorf(status.InvalidPort, "failed to parse port: %s", port)
	}

	return Host{Hostname: hostname, Port: p}, nil
}

// String renders the host back into its wire form. The port is always
// included, even when it was defaulted on parse.
func (h Host) String() string {
	return h.Hostname + ":" + strconv.Itoa(h.Port)
}
