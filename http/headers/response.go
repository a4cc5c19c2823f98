package headers

import "github.com/indigo-web/utils/strcomp"

// ResponseField enumerates the response-header classification table. The
// table exists for symmetry with the other three and is reserved for a
// future response-parsing path: request classification never consults it.
type ResponseField uint8

const (
	AcceptRanges ResponseField = iota
	Age
	ETag
	Location
	ProxyAuthenticate
	RetryAfter
	Server
	Vary
	WWWAuthenticate
)

var responseFieldNames = [...]string{
	AcceptRanges:      "Accept-Ranges",
	Age:               "Age",
	ETag:              "ETag",
	Location:          "Location",
	ProxyAuthenticate: "Proxy-Authenticate",
	RetryAfter:        "Retry-After",
	Server:            "Server",
	Vary:              "Vary",
	WWWAuthenticate:   "WWW-Authenticate",
}

func (f ResponseField) String() string {
	if int(f) >= len(responseFieldNames) {
		return ""
	}

	return responseFieldNames[f]
}

// ParseResponseField matches a wire name against the table,
// case-insensitively.
func ParseResponseField(name string) (ResponseField, bool) {
	for f, canonical := range responseFieldNames {
		if strcomp.EqualFold(name, canonical) {
			return ResponseField(f), true
		}
	}

	return 0, false
}

// ResponseHeaders holds the parsed values of all recognized response
// headers.
type ResponseHeaders struct {
	AcceptRanges      Field[string]
	Age               Field[string]
	ETag              Field[string]
	Location          Field[string]
	ProxyAuthenticate Field[string]
	RetryAfter        Field[string]
	Server            Field[string]
	Vary              Field[string]
	WWWAuthenticate   Field[string]
}

// Insert stores a raw header value into its typed slot, overwriting any
// previous value.
func (h *ResponseHeaders) Insert(f ResponseField, value string) {
	if slot := h.slot(f); slot != nil {
		slot.Set(value)
	}
}

func (h *ResponseHeaders) slot(f ResponseField) *Field[string] {
	switch f {
	case AcceptRanges:
		return &h.AcceptRanges
	case Age:
		return &h.Age
	case ETag:
		return &h.ETag
	case Location:
		return &h.Location
	case ProxyAuthenticate:
		return &h.ProxyAuthenticate
	case RetryAfter:
		return &h.RetryAfter
	case Server:
		return &h.Server
	case Vary:
		return &h.Vary
	case WWWAuthenticate:
		return &h.WWWAuthenticate
	default:
		return nil
	}
}
