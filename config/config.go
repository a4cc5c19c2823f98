package config

import "time"

// DecodePolicy tells the parser what to do with body bytes that aren't
// valid UTF-8.
type DecodePolicy uint8

const (
	// DecodeLossy substitutes invalid sequences with the Unicode
	// replacement character.
	DecodeLossy DecodePolicy = iota
	// DecodeStrict rejects the request with status.ErrBadBodyEncoding.
	DecodeStrict
)

type (
	NET struct {
		// ReadBufferSize is a size of the buffer used to read from the
		// socket.
		ReadBufferSize int
		// ReadTimeout bounds how long a connection may stay silent before
		// it's closed. The parser itself applies no deadlines; the host
		// sets this one on the socket before handing the stream over.
		ReadTimeout time.Duration
	}

	Body struct {
		// Decode selects the body decoding policy.
		Decode DecodePolicy
		// MaxSize rejects any request declaring a Content-Length above it
		// with status.ErrBodyTooLarge before a single body byte is read.
		// Zero disables the limit.
		MaxSize int64
	}

	Headers struct {
		// ExtensionPrealloc is the number of pre-allocated seats in the
		// extension bucket.
		ExtensionPrealloc int
	}
)

type Config struct {
	NET     NET
	Body    Body
	Headers Headers
}

func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize: 4096,
			ReadTimeout:    90 * time.Second,
		},
		Body: Body{
			Decode: DecodeLossy,
		},
		Headers: Headers{
			ExtensionPrealloc: 8,
		},
	}
}

// Fill replaces zero fields of the config with defaults. The decode policy
// and the body size limit are left as-is: a zero policy is the lossy
// default already, and a zero limit means no limit.
func Fill(cfg *Config) *Config {
	defaults := Default()

	if cfg.NET.ReadBufferSize == 0 {
		cfg.NET.ReadBufferSize = defaults.NET.ReadBufferSize
	}
	if cfg.NET.ReadTimeout == 0 {
		cfg.NET.ReadTimeout = defaults.NET.ReadTimeout
	}
	if cfg.Headers.ExtensionPrealloc == 0 {
		cfg.Headers.ExtensionPrealloc = defaults.Headers.ExtensionPrealloc
	}

	return cfg
}
