package octet

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/octet-web/octet/http"
	"github.com/octet-web/octet/http/method"
	"github.com/octet-web/octet/internal/server/tcp"
)

const addr = "localhost:16161"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func dialRetry(t *testing.T) net.Conn {
	t.Helper()

	var (
		conn net.Conn
		err  error
	)
	for i := 0; i < 100; i++ {
		conn, err = net.Dial("tcp", addr)
		if err == nil {
			return conn
		}

		time.Sleep(10 * time.Millisecond)
	}

	require.NoError(t, err)

	return nil
}

func TestApp(t *testing.T) {
	requests := make(chan *http.Request, 1)
	app := New(addr).OnRequest(func(remote net.Addr, request *http.Request) {
		requests <- request
	})

	served := make(chan error, 1)
	go func() {
		served <- app.Serve()
	}()

	conn := dialRetry(t)
	defer func() {
		_ = conn.Close()
	}()

	raw := "POST /submit HTTP/1.1\r\nHost: a.com\r\nContent-Length: 5\r\n\r\nhello"
	_, err := conn.Write([]byte(raw))
	require.NoError(t, err)

	select {
	case request := <-requests:
		require.Equal(t, method.POST, request.Line.Method)
		require.Equal(t, "/submit", request.Line.URI)

		h, ok := request.Headers.Request.Host.Get()
		require.True(t, ok)
		require.Equal(t, "a.com:80", h.String())

		body, ok := request.Body()
		require.True(t, ok)
		require.Equal(t, "hello", body)
	case <-time.After(5 * time.Second):
		t.Fatal("no request arrived in time")
	}

	require.NoError(t, app.Stop())
	require.ErrorIs(t, <-served, tcp.ErrShutdown)
}

func TestNewPanicsOnBadAddr(t *testing.T) {
	require.Panics(t, func() {
		New("a:b:c")
	})
}
