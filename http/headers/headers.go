package headers

import (
	"strings"

	"github.com/octet-web/octet/http/status"
)

// Headers aggregates the three containers a request parse fills in. The
// response table is never consulted here; every header line lands either in
// a typed slot of one of these containers or in the entity extension
// bucket.
type Headers struct {
	Request RequestHeaders
	General GeneralHeaders
	Entity  EntityHeaders
}

func New() *Headers {
	return NewPreAlloc(0)
}

// NewPreAlloc returns Headers with n seats pre-allocated in the extension
// bucket.
func NewPreAlloc(n int) *Headers {
	return &Headers{
		Entity: EntityHeaders{
			Extension: NewBucketPreAlloc(n),
		},
	}
}

// Insert classifies a raw pair and places it into the owning container:
// request table first, then general, then entity, whose extension bucket
// matches everything left over. Classification itself never fails; the only
// errors are value errors of the typed slots (Host, Content-Length).
func (h *Headers) Insert(name, value string) error {
	if f, ok := ParseRequestField(name); ok {
		return h.Request.Insert(f, value)
	}

	if f, ok := ParseGeneralField(name); ok {
		h.General.Insert(f, value)
		return nil
	}

	if f, ok := ParseEntityField(name); ok {
		return h.Entity.Insert(f, value)
	}

	h.Entity.Extension.Set(name, value)

	return nil
}

// Split splits a header line on the first colon only, so the value is free
// to contain colons itself. A line without a colon is
// status.ErrMalformedHeader. Both name and value are trimmed of surrounding
// whitespace.
func Split(line string) (name, value string, err error) {
	name, value, found := strings.Cut(line, ":")
	if !found {
		return "", "", status.Errorf(status.MalformedHeader, "expected a colon in header line: %s", line)
	}

	return strings.TrimSpace(name), strings.TrimSpace(value), nil
}
