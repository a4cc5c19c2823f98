package method

import (
	"github.com/octet-web/octet/http/status"
)

// Method is one of the seven standard HTTP methods, or an extension method
// carrying its token verbatim. The zero value is not a valid method.
type Method struct {
	kind  kind
	token string
}

type kind uint8

const (
	unknown kind = iota
	kOptions
	kGet
	kPost
	kPut
	kDelete
	kTrace
	kConnect
	kExtension
)

var (
	OPTIONS = Method{kind: kOptions}
	GET     = Method{kind: kGet}
	POST    = Method{kind: kPost}
	PUT     = Method{kind: kPut}
	DELETE  = Method{kind: kDelete}
	TRACE   = Method{kind: kTrace}
	CONNECT = Method{kind: kConnect}
)

// List contains all the standard methods, extension methods excluded.
var List = []Method{OPTIONS, GET, POST, PUT, DELETE, TRACE, CONNECT}

// Extension wraps a non-standard method token. The token is rendered back
// verbatim by String.
func Extension(token string) Method {
	return Method{kind: kExtension, token: token}
}

// Parse matches the token against the standard methods, case-sensitively.
// Any other purely ASCII-alphabetic token becomes an extension method;
// everything else fails with status.ErrInvalidMethod.
func Parse(token string) (Method, error) {
	switch len(token) {
	case 3:
		if token == "GET" {
			return GET, nil
		} else if token == "PUT" {
			return PUT, nil
		}
	case 4:
		if token == "POST" {
			return POST, nil
		}
	case 5:
		if token == "TRACE" {
			return TRACE, nil
		}
	case 6:
		if token == "DELETE" {
			return DELETE, nil
		}
	case 7:
		if token == "OPTIONS" {
			return OPTIONS, nil
		} else if token == "CONNECT" {
			return CONNECT, nil
		}
	}

	if !isAlphabetic(token) {
		return Method{}, status.Errorf(status.InvalidMethod, "invalid extension method: %s", token)
	}

	return Extension(token), nil
}

// IsExtension reports whether the method is a non-standard one.
func (m Method) IsExtension() bool {
	return m.kind == kExtension
}

func (m Method) String() string {
	lut := [...]string{
		kOptions: "OPTIONS",
		kGet:     "GET",
		kPost:    "POST",
		kPut:     "PUT",
		kDelete:  "DELETE",
		kTrace:   "TRACE",
		kConnect: "CONNECT",
	}
	if m.kind == kExtension {
		return m.token
	}
	if m.kind == unknown || int(m.kind) >= len(lut) {
		return ""
	}

	return lut[m.kind]
}

func isAlphabetic(token string) bool {
	if len(token) == 0 {
		return false
	}

	for i := 0; i < len(token); i++ {
		c := token[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}

	return true
}
