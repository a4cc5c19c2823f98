package http

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/octet-web/octet/http/headers"
	"github.com/octet-web/octet/http/method"
	"github.com/octet-web/octet/http/proto"
	"github.com/octet-web/octet/http/status"
)

func TestParseRequestLine(t *testing.T) {
	t.Run("simple GET", func(t *testing.T) {
		line, err := ParseRequestLine("GET /index.html HTTP/1.1")
		require.NoError(t, err)
		require.Equal(t, method.GET, line.Method)
		require.Equal(t, "/index.html", line.URI)
		require.Equal(t, proto.HTTP11, line.Version)
	})

	t.Run("uri is stored opaque", func(t *testing.T) {
		line, err := ParseRequestLine("GET /a%20b?q=1:2#frag HTTP/1.1")
		require.NoError(t, err)
		require.Equal(t, "/a%20b?q=1:2#frag", line.URI)
	})

	t.Run("extension method", func(t *testing.T) {
		line, err := ParseRequestLine("PATCH /res HTTP/1.1")
		require.NoError(t, err)
		require.True(t, line.Method.IsExtension())
		require.Equal(t, "PATCH", line.Method.String())
	})

	t.Run("two fields", func(t *testing.T) {
		_, err := ParseRequestLine("GET /")
		require.True(t, errors.Is(err, status.ErrMalformedRequestLine))
	})

	t.Run("four fields", func(t *testing.T) {
		_, err := ParseRequestLine("GET / index.html HTTP/1.1")
		require.True(t, errors.Is(err, status.ErrMalformedRequestLine))
	})

	t.Run("bad method", func(t *testing.T) {
		_, err := ParseRequestLine("G3T / HTTP/1.1")
		require.True(t, errors.Is(err, status.ErrInvalidMethod))
	})

	t.Run("bad version", func(t *testing.T) {
		_, err := ParseRequestLine("GET / HTTP/1")
		require.True(t, errors.Is(err, status.ErrMalformedVersion))
	})
}

func TestRequestBody(t *testing.T) {
	line, err := ParseRequestLine("POST /submit HTTP/1.1")
	require.NoError(t, err)

	t.Run("absent body", func(t *testing.T) {
		request := NewRequest(line, headers.New())
		body, ok := request.Body()
		require.False(t, ok)
		require.Empty(t, body)
		require.False(t, request.HasBody())
	})

	t.Run("present body", func(t *testing.T) {
		request := NewRequestWithBody(line, headers.New(), "hello")
		body, ok := request.Body()
		require.True(t, ok)
		require.Equal(t, "hello", body)
	})

	t.Run("JSON on bodyless request", func(t *testing.T) {
		request := NewRequest(line, headers.New())
		var into map[string]string
		require.ErrorIs(t, request.JSON(&into), ErrNoBody)
	})

	t.Run("JSON decodes the body", func(t *testing.T) {
		request := NewRequestWithBody(line, headers.New(), `{"hello":"world"}`)
		var into map[string]string
		require.NoError(t, request.JSON(&into))
		require.Equal(t, map[string]string{"hello": "world"}, into)
	})
}
