package host

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/octet-web/octet/http/status"
)

func TestParse(t *testing.T) {
	t.Run("hostname and port", func(t *testing.T) {
		h, err := Parse("example.com:8080")
		require.NoError(t, err)
		require.Equal(t, "example.com", h.Hostname)
		require.Equal(t, 8080, h.Port)
	})

	t.Run("no port defaults to 80", func(t *testing.T) {
		h, err := Parse("example.com")
		require.NoError(t, err)
		require.Equal(t, "example.com", h.Hostname)
		require.Equal(t, DefaultPort, h.Port)
	})

	t.Run("only port", func(t *testing.T) {
		h, err := Parse(":8080")
		require.NoError(t, err)
		require.Empty(t, h.Hostname)
		require.Equal(t, 8080, h.Port)
	})

	t.Run("non-integer port", func(t *testing.T) {
		_, err := Parse("example.com:http")
		require.True(t, errors.Is(err, status.ErrInvalidPort))
	})

	t.Run("negative port", func(t *testing.T) {
		_, err := Parse("example.com:-1")
		require.True(t, errors.Is(err, status.ErrInvalidPort))
	})

	t.Run("more than one colon", func(t *testing.T) {
		_, err := Parse("example.com:80:80")
		require.True(t, errors.Is(err, status.ErrMalformedHost))
	})
}

func TestString(t *testing.T) {
	t.Run("explicit port round trip", func(t *testing.T) {
		h, err := Parse("example.com:8080")
		require.NoError(t, err)
		require.Equal(t, "example.com:8080", h.String())
	})

	t.Run("defaulted port is rendered", func(t *testing.T) {
		h, err := Parse("example.com")
		require.NoError(t, err)
		require.Equal(t, "example.com:80", h.String())
	})
}
