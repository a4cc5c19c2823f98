package headers

import "github.com/indigo-web/utils/strcomp"

// GeneralField enumerates the general-header classification table.
type GeneralField uint8

const (
	CacheControl GeneralField = iota
	Connection
	Date
	Pragma
	Trailer
	TransferEncoding
	Upgrade
	Via
	Warning
)

var generalFieldNames = [...]string{
	CacheControl:     "Cache-Control",
	Connection:       "Connection",
	Date:             "Date",
	Pragma:           "Pragma",
	Trailer:          "Trailer",
	TransferEncoding: "Transfer-Encoding",
	Upgrade:          "Upgrade",
	Via:              "Via",
	Warning:          "Warning",
}

func (f GeneralField) String() string {
	if int(f) >= len(generalFieldNames) {
		return ""
	}

	return generalFieldNames[f]
}

// ParseGeneralField matches a wire name against the table,
// case-insensitively.
func ParseGeneralField(name string) (GeneralField, bool) {
	for f, canonical := range generalFieldNames {
		if strcomp.EqualFold(name, canonical) {
			return GeneralField(f), true
		}
	}

	return 0, false
}

// GeneralHeaders holds the parsed values of all recognized general headers.
type GeneralHeaders struct {
	CacheControl     Field[string]
	Connection       Field[string]
	Date             Field[string]
	Pragma           Field[string]
	Trailer          Field[string]
	TransferEncoding Field[string]
	Upgrade          Field[string]
	Via              Field[string]
	Warning          Field[string]
}

// Insert stores a raw header value into its typed slot, overwriting any
// previous value.
func (h *GeneralHeaders) Insert(f GeneralField, value string) {
	if slot := h.slot(f); slot != nil {
		slot.Set(value)
	}
}

func (h *GeneralHeaders) slot(f GeneralField) *Field[string] {
	switch f {
	case CacheControl:
		return &h.CacheControl
	case Connection:
		return &h.Connection
	case Date:
		return &h.Date
	case Pragma:
		return &h.Pragma
	case Trailer:
		return &h.Trailer
	case TransferEncoding:
		return &h.TransferEncoding
	case Upgrade:
		return &h.Upgrade
	case Via:
		return &h.Via
	case Warning:
		return &h.Warning
	default:
		return nil
	}
}
