package headers

import (
	"github.com/indigo-web/utils/strcomp"

	"github.com/octet-web/octet/http/host"
)

// RequestField enumerates the request-header classification table.
type RequestField uint8

const (
	Accept RequestField = iota
	AcceptCharset
	AcceptEncoding
	AcceptLanguage
	Authorization
	Expect
	From
	Host
	IfMatch
	IfModifiedSince
	IfNoneMatch
	IfRange
	IfUnmodifiedSince
	MaxForwards
	ProxyAuthorization
	Range
	Referer
	TE
	UserAgent
)

var requestFieldNames = [...]string{
	Accept:             "Accept",
	AcceptCharset:      "Accept-Charset",
	AcceptEncoding:     "Accept-Encoding",
	AcceptLanguage:     "Accept-Language",
	Authorization:      "Authorization",
	Expect:             "Expect",
	From:               "From",
	Host:               "Host",
	IfMatch:            "If-Match",
	IfModifiedSince:    "If-Modified-Since",
	IfNoneMatch:        "If-None-Match",
	IfRange:            "If-Range",
	IfUnmodifiedSince:  "If-Unmodified-Since",
	MaxForwards:        "Max-Forwards",
	ProxyAuthorization: "Proxy-Authorization",
	Range:              "Range",
	Referer:            "Referer",
	TE:                 "TE",
	UserAgent:          "User-Agent",
}

// String returns the canonical wire spelling of the field.
func (f RequestField) String() string {
	if int(f) >= len(requestFieldNames) {
		return ""
	}

	return requestFieldNames[f]
}

// ParseRequestField matches a wire name against the table,
// case-insensitively.
func ParseRequestField(name string) (RequestField, bool) {
	for f, canonical := range requestFieldNames {
		if strcomp.EqualFold(name, canonical) {
			return RequestField(f), true
		}
	}

	return 0, false
}

// RequestHeaders holds the parsed values of all recognized request headers.
// Every slot is optional until the corresponding header line arrives.
type RequestHeaders struct {
	Accept             Field[string]
	AcceptCharset      Field[string]
	AcceptEncoding     Field[string]
	AcceptLanguage     Field[string]
	Authorization      Field[string]
	Expect             Field[string]
	From               Field[string]
	Host               Field[host.Host]
	IfMatch            Field[string]
	IfModifiedSince    Field[string]
	IfNoneMatch        Field[string]
	IfRange            Field[string]
	IfUnmodifiedSince  Field[string]
	MaxForwards        Field[string]
	ProxyAuthorization Field[string]
	Range              Field[string]
	Referer            Field[string]
	TE                 Field[string]
	UserAgent          Field[string]
}

// Insert stores a raw header value into its typed slot. The Host value is
// parsed further via host.Parse; its failure aborts the whole request parse.
func (h *RequestHeaders) Insert(f RequestField, value string) error {
	if f == Host {
		parsed, err := host.Parse(value)
		if err != nil {
			return err
		}

		h.Host.Set(parsed)

		return nil
	}

	if slot := h.slot(f); slot != nil {
		slot.Set(value)
	}

	return nil
}

func (h *RequestHeaders) slot(f RequestField) *Field[string] {
	switch f {
	case Accept:
		return &h.Accept
	case AcceptCharset:
		return &h.AcceptCharset
	case AcceptEncoding:
		return &h.AcceptEncoding
	case AcceptLanguage:
		return &h.AcceptLanguage
	case Authorization:
		return &h.Authorization
	case Expect:
		return &h.Expect
	case From:
		return &h.From
	case IfMatch:
		return &h.IfMatch
	case IfModifiedSince:
		return &h.IfModifiedSince
	case IfNoneMatch:
		return &h.IfNoneMatch
	case IfRange:
		return &h.IfRange
	case IfUnmodifiedSince:
		return &h.IfUnmodifiedSince
	case MaxForwards:
		return &h.MaxForwards
	case ProxyAuthorization:
		return &h.ProxyAuthorization
	case Range:
		return &h.Range
	case Referer:
		return &h.Referer
	case TE:
		return &h.TE
	case UserAgent:
		return &h.UserAgent
	default:
		return nil
	}
}
