package http1

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/utils/uf"

	"github.com/octet-web/octet/config"
	"github.com/octet-web/octet/http"
	"github.com/octet-web/octet/http/headers"
	"github.com/octet-web/octet/http/status"
	"github.com/octet-web/octet/internal/line"
)

type state uint8

const (
	idle state = iota
	awaitRequestLine
	awaitHeaders
	maybeBody
	done
)

// ErrExhausted is returned by repeated Parse calls: a parser consumes a
// single request per connection, there is no pipelining.
var ErrExhausted = errors.New("the parser has already consumed its stream")

// Parser drives a line-buffered byte stream to a single fully assembled
// request: request line, then header lines until a blank one, then exactly
// the declared number of body bytes. The states advance strictly forward,
// there is no backtracking. Every read blocks until bytes are available or
// the stream ends; deadlines, if any, belong to whoever owns the socket.
//
// The first malformed input aborts the whole parse: no partial request is
// ever returned.
type Parser struct {
	cfg   *config.Config
	src   *line.Reader
	state state
}

// NewParser wraps a readable byte stream of one connection. One parser
// serves one connection; it holds no shared state and needs no locking.
func NewParser(source io.Reader, cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Parser{
		cfg: cfg,
		src: line.NewReaderSize(source, cfg.NET.ReadBufferSize),
	}
}

// Parse consumes one request off the stream. It may be called once per
// parser; any further call, even after a failed parse, returns
// ErrExhausted.
func (p *Parser) Parse() (*http.Request, error) {
	if p.state != idle {
		return nil, ErrExhausted
	}

	p.state = awaitRequestLine

	raw, err := p.src.ReadLine()
	if err != nil {
		if err == io.EOF {
			return nil, status.ErrUnexpectedEOF
		}

		return nil, status.Errorf(status.IO, "failed to read request line: %s", err)
	}

	raw = strings.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, status.ErrUnexpectedEOF
	}

	requestLine, err := http.ParseRequestLine(raw)
	if err != nil {
		return nil, err
	}

	p.state = awaitHeaders
	hdrs := headers.NewPreAlloc(p.cfg.Headers.ExtensionPrealloc)

	for {
		rawHeader, err := p.src.ReadLine()
		if err == io.EOF {
			// stream end amid headers terminates the section just like
			// the blank line does
			break
		}
		if err != nil {
			return nil, status.Errorf(status.IO, "failed to read header line: %s", err)
		}

		rawHeader = strings.TrimSpace(rawHeader)
		if len(rawHeader) == 0 {
			break
		}

		name, value, err := headers.Split(rawHeader)
		if err != nil {
			return nil, err
		}

		if err = hdrs.Insert(name, value); err != nil {
			return nil, err
		}
	}

	p.state = maybeBody

	body, present, err := p.readBody(hdrs)
	if err != nil {
		return nil, err
	}

	p.state = done

	if !present {
		return http.NewRequest(requestLine, hdrs), nil
	}

	return http.NewRequestWithBody(requestLine, hdrs, body), nil
}

// readBody reads up to the declared Content-Length worth of bytes. Zero
// declared length means the body is absent, not empty. A stream ending
// before the declared length is accepted as-is; the stricter alternative
// would be to compare the read length against n here and fail with
// status.ErrUnexpectedEOF.
func (p *Parser) readBody(hdrs *headers.Headers) (string, bool, error) {
	n, ok := hdrs.Entity.ContentLength.Get()
	if !ok || n == 0 {
		return "", false, nil
	}

	if limit := p.cfg.Body.MaxSize; limit > 0 && int64(n) > limit {
		return "", false, status.ErrBodyTooLarge
	}

	raw, err := p.src.ReadN(n)
	if err != nil {
		return "", false, status.Errorf(status.IO, "failed to read body: %s", err)
	}

	decoded, err := decode(raw, p.cfg.Body.Decode)
	if err != nil {
		return "", false, err
	}

	return decoded, true, nil
}

func decode(raw []byte, policy config.DecodePolicy) (string, error) {
	if utf8.Valid(raw) {
		// the buffer is exclusively ours, so no copy is needed
		return uf.B2S(raw), nil
	}

	if policy == config.DecodeStrict {
		return "", status.ErrBadBodyEncoding
	}

	return strings.ToValidUTF8(uf.B2S(raw), string(utf8.RuneError)), nil
}
