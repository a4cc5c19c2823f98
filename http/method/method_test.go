package method

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/octet-web/octet/http/status"
)

func TestParse(t *testing.T) {
	t.Run("standard methods", func(t *testing.T) {
		for _, m := range List {
			parsed, err := Parse(m.String())
			require.NoError(t, err)
			require.Equal(t, m, parsed)
			require.False(t, parsed.IsExtension())
		}
	})

	t.Run("alphabetic token becomes extension", func(t *testing.T) {
		for _, token := range []string{"PATCH", "HEAD", "brew"} {
			parsed, err := Parse(token)
			require.NoError(t, err)
			require.True(t, parsed.IsExtension())
			require.Equal(t, token, parsed.String())
		}
	})

	t.Run("standard match is case-sensitive", func(t *testing.T) {
		parsed, err := Parse("get")
		require.NoError(t, err)
		require.True(t, parsed.IsExtension())
	})

	t.Run("non-alphabetic token fails", func(t *testing.T) {
		for _, token := range []string{"GET2", "GE T", "G-ET", "", "%47ET"} {
			_, err := Parse(token)
			require.True(t, errors.Is(err, status.ErrInvalidMethod), "token: %q", token)
		}
	})
}

func TestString(t *testing.T) {
	for _, m := range List {
		parsed, err := Parse(m.String())
		require.NoError(t, err)
		require.Equal(t, m.String(), parsed.String())
	}
}
