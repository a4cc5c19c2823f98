package octet

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/phsym/console-slog"

	"github.com/octet-web/octet/config"
	"github.com/octet-web/octet/http"
	"github.com/octet-web/octet/http/host"
	"github.com/octet-web/octet/http/parser/http1"
	"github.com/octet-web/octet/internal/server/tcp"
)

// Handler receives every successfully parsed request along with the remote
// address it arrived from. The request is exclusively owned by the handler.
type Handler func(remote net.Addr, request *http.Request)

// App is a thin host around the parser: it binds a listening address and
// feeds each accepted connection into a fresh request parser. It never
// writes to the stream; a malformed request is logged and the connection
// closed.
type App struct {
	addr      host.Host
	cfg       *config.Config
	log       *slog.Logger
	srv       *tcp.Server
	onRequest Handler
}

// New returns a new App instance bound to addr (hostname[:port] wire form).
func New(addr string) *App {
	bind, err := host.Parse(addr)
	if err != nil {
		panic(fmt.Errorf("octet: listen: bad addr: %v", err))
	}

	return &App{
		addr: bind,
		cfg:  config.Default(),
		log: slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	}
}

// Tune replaces default config. Zero fields are filled back in with
// defaults.
func (a *App) Tune(cfg config.Config) *App {
	a.cfg = config.Fill(&cfg)
	return a
}

// UseLogger replaces the default console logger.
func (a *App) UseLogger(log *slog.Logger) *App {
	a.log = log
	return a
}

// OnRequest sets the callback receiving every parsed request.
func (a *App) OnRequest(cb Handler) *App {
	a.onRequest = cb
	return a
}

// Serve binds the listener and blocks until the server is stopped. After
// Stop or GracefulShutdown it returns tcp.ErrShutdown.
func (a *App) Serve() error {
	sock, err := net.Listen("tcp", a.addr.String())
	if err != nil {
		return err
	}

	a.srv = tcp.NewServer(sock, a.handleConn)
	a.log.Info("listening", "addr", a.addr.String())

	return a.srv.Start()
}

// GracefulShutdown stops the listener, leaving the connections intact.
func (a *App) GracefulShutdown() error {
	return a.srv.GracefulShutdown()
}

// Stop shuts the listener and all the connections down.
func (a *App) Stop() error {
	return a.srv.Stop()
}

func (a *App) handleConn(conn net.Conn) {
	defer func() {
		_ = conn.Close()
	}()

	if timeout := a.cfg.NET.ReadTimeout; timeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(timeout))
	}

	request, err := http1.NewParser(conn, a.cfg).Parse()
	if err != nil {
		a.log.Error("malformed request",
			"remote", conn.RemoteAddr().String(), "error", err)
		return
	}

	a.log.Info("request",
		"remote", conn.RemoteAddr().String(), "line", request.Line.String())

	if a.onRequest != nil {
		a.onRequest(conn.RemoteAddr(), request)
	}
}
