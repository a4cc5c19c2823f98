package headers

import (
	"strconv"

	"github.com/indigo-web/utils/strcomp"

	"github.com/octet-web/octet/http/status"
)

// EntityField enumerates the entity-header classification table. The table
// is special: any header name no table recognizes falls through into the
// entity extension bucket, so classification as a whole never fails.
type EntityField uint8

const (
	Allow EntityField = iota
	ContentEncoding
	ContentLanguage
	ContentLength
	ContentLocation
	ContentMD5
	ContentRange
	ContentType
	Expires
	LastModified
)

var entityFieldNames = [...]string{
	Allow:           "Allow",
	ContentEncoding: "Content-Encoding",
	ContentLanguage: "Content-Language",
	ContentLength:   "Content-Length",
	ContentLocation: "Content-Location",
	ContentMD5:      "Content-MD5",
	ContentRange:    "Content-Range",
	ContentType:     "Content-Type",
	Expires:         "Expires",
	LastModified:    "Last-Modified",
}

func (f EntityField) String() string {
	if int(f) >= len(entityFieldNames) {
		return ""
	}

	return entityFieldNames[f]
}

// ParseEntityField matches a wire name against the table,
// case-insensitively.
func ParseEntityField(name string) (EntityField, bool) {
	for f, canonical := range entityFieldNames {
		if strcomp.EqualFold(name, canonical) {
			return EntityField(f), true
		}
	}

	return 0, false
}

// EntityHeaders holds the parsed values of all recognized entity headers
// plus the extension bucket for everything unrecognized.
type EntityHeaders struct {
	Allow           Field[string]
	ContentEncoding Field[string]
	ContentLanguage Field[string]
	ContentLength   Field[int]
	ContentLocation Field[string]
	ContentMD5      Field[string]
	ContentRange    Field[string]
	ContentType     Field[string]
	Expires         Field[string]
	LastModified    Field[string]

	// Extension collects headers not present in any classification table.
	Extension Bucket
}

// Insert stores a raw header value into its typed slot. A Content-Length
// value must parse as a non-negative integer; its failure aborts the whole
// request parse.
func (h *EntityHeaders) Insert(f EntityField, value string) error {
	if f == ContentLength {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return status.Errorf(status.InvalidContentLength, "failed to parse content length: %s", value)
		}

		h.ContentLength.Set(n)

		return nil
	}

	if slot := h.slot(f); slot != nil {
		slot.Set(value)
	}

	return nil
}

func (h *EntityHeaders) slot(f EntityField) *Field[string] {
	switch f {
	case Allow:
		return &h.Allow
	case ContentEncoding:
		return &h.ContentEncoding
	case ContentLanguage:
		return &h.ContentLanguage
	case ContentLocation:
		return &h.ContentLocation
	case ContentMD5:
		return &h.ContentMD5
	case ContentRange:
		return &h.ContentRange
	case ContentType:
		return &h.ContentType
	case Expires:
		return &h.Expires
	case LastModified:
		return &h.LastModified
	default:
		return nil
	}
}
