package status

import "fmt"

// Kind classifies every way a request parse can fail. The parser aborts on
// the first failure and surfaces exactly one Error; there are no partial
// results and no recovery inside the parser.
type Kind uint8

const (
	Unknown Kind = iota
	// MalformedRequestLine - wrong token count in the first line.
	MalformedRequestLine
	// InvalidMethod - method token is neither standard nor purely alphabetic.
	InvalidMethod
	// MalformedVersion - version token does not match HTTP/<int>.<int>.
	MalformedVersion
	// MalformedHeader - header line contains no colon.
	MalformedHeader
	// MalformedHost - Host header value contains more than one colon.
	MalformedHost
	// InvalidPort - Host port segment is not a non-negative integer.
	InvalidPort
	// InvalidContentLength - Content-Length value is not a non-negative integer.
	InvalidContentLength
	// BodyTooLarge - declared Content-Length exceeds the configured limit.
	BodyTooLarge
	// BadBodyEncoding - body is not valid UTF-8 and strict decoding is enabled.
	BadBodyEncoding
	// IO - the underlying stream read failed.
	IO
	// UnexpectedEOF - the stream ended before a required line was available.
	UnexpectedEOF
)

func (k Kind) String() string {
	lut := [...]string{
		Unknown:              "unknown",
		MalformedRequestLine: "malformed request line",
		InvalidMethod:        "invalid method",
		MalformedVersion:     "malformed version",
		MalformedHeader:      "malformed header",
		MalformedHost:        "malformed host",
		InvalidPort:          "invalid port",
		InvalidContentLength: "invalid content length",
		BodyTooLarge:         "body too large",
		BadBodyEncoding:      "bad body encoding",
		IO:                   "io error",
		UnexpectedEOF:        "unexpected EOF",
	}
	if int(k) >= len(lut) {
		return "unknown"
	}

	return lut[k]
}

// Error is a parse failure carrying its Kind and a human-readable diagnostic.
// Two Errors match via errors.Is whenever their Kinds are equal, so callers
// can test against the catalogue below regardless of the diagnostic text.
type Error struct {
	Kind    Kind
	Message string
}

func NewError(kind Kind, message string) Error {
	return Error{
		Kind:    kind,
		Message: message,
	}
}

// Errorf builds an Error of the given kind with a formatted diagnostic.
func Errorf(kind Kind, format string, args ...any) Error {
	return Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e Error) Error() string {
	return e.Message
}

func (e Error) Is(target error) bool {
	other, ok := target.(Error)
	return ok && other.Kind == e.Kind
}

var (
	ErrMalformedRequestLine = NewError(MalformedRequestLine, "expected method SP uri SP version in request line")
	ErrInvalidMethod        = NewError(InvalidMethod, "invalid method token")
	ErrMalformedVersion     = NewError(MalformedVersion, "expected version of form HTTP/<major>.<minor>")
	ErrMalformedHeader      = NewError(MalformedHeader, "expected a colon delimiting header name and value")
	ErrMalformedHost        = NewError(MalformedHost, "expected hostname or hostname:port")
	ErrInvalidPort          = NewError(InvalidPort, "port is not a non-negative integer")
	ErrInvalidContentLength = NewError(InvalidContentLength, "content length is not a non-negative integer")
	ErrBodyTooLarge         = NewError(BodyTooLarge, "declared content length exceeds the limit")
	ErrBadBodyEncoding      = NewError(BadBodyEncoding, "body is not valid UTF-8")
	ErrIO                   = NewError(IO, "underlying stream read failed")
	ErrUnexpectedEOF        = NewError(UnexpectedEOF, "stream ended before the request line")
)
