package http

import (
	"errors"
	"strings"

	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"

	"github.com/octet-web/octet/http/headers"
	"github.com/octet-web/octet/http/method"
	"github.com/octet-web/octet/http/proto"
	"github.com/octet-web/octet/http/status"
)

// ErrNoBody is returned by body accessors of a request that carried none.
var ErrNoBody = errors.New("request has no body")

// RequestLine is the first line of a request: method, target URI and
// protocol version. The URI is stored opaque, with no normalization or
// percent-decoding applied.
type RequestLine struct {
	Method  method.Method
	URI     string
	Version proto.Version
}

// ParseRequestLine parses a request line with the trailing CR/LF already
// stripped by the caller. Exactly three space-separated fields are
// required; all of them are mandatory and strictly positioned.
func ParseRequestLine(line string) (RequestLine, error) {
	fields := strings.Split(line, " ")
	if len(fields) != 3 {
		return RequestLine{}, status.Errorf(
			status.MalformedRequestLine, "expected method SP uri SP version, got %d field(s)", len(fields),
		)
	}

	m, err := method.Parse(fields[0])
	if err != nil {
		return RequestLine{}, err
	}

	version, err := proto.Parse(fields[2])
	if err != nil {
		return RequestLine{}, err
	}

	return RequestLine{
		Method:  m,
		URI:     fields[1],
		Version: version,
	}, nil
}

func (r RequestLine) String() string {
	return r.Method.String() + " " + r.URI + " " + r.Version.String()
}

// Request is a fully parsed request. It is constructed once by a single
// parse call, owned exclusively by that call's caller, and never mutated
// afterwards.
type Request struct {
	Line    RequestLine
	Headers *headers.Headers

	body    string
	hasBody bool
}

// NewRequest assembles a request without a body.
func NewRequest(line RequestLine, hdrs *headers.Headers) *Request {
	return &Request{
		Line:    line,
		Headers: hdrs,
	}
}

// NewRequestWithBody assembles a request carrying a body. A body is
// distinct from an absent one even when empty, although the parser itself
// never produces a present-but-empty body.
func NewRequestWithBody(line RequestLine, hdrs *headers.Headers, body string) *Request {
	return &Request{
		Line:    line,
		Headers: hdrs,
		body:    body,
		hasBody: true,
	}
}

// Body returns the decoded body and whether one was present at all. A
// request with Content-Length: 0, or without Content-Length, has no body.
func (r *Request) Body() (string, bool) {
	return r.body, r.hasBody
}

// HasBody reports whether the request carried a body.
func (r *Request) HasBody() bool {
	return r.hasBody
}

// JSON convoys the request's body to a json unmarshaller and behaves in a
// similar manner. ErrNoBody is returned for bodyless requests.
func (r *Request) JSON(model any) error {
	if !r.hasBody {
		return ErrNoBody
	}

	iterator := json.ConfigDefault.BorrowIterator(uf.S2B(r.body))
	iterator.ReadVal(model)
	err := iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	return err
}
