// Package web serves the arcade to browsers. The page draws frames on a
// canvas; games run on the server, one session host per WebSocket.
package web

import (
	"context"
	_ "embed"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/mini-arcade/internal/storage"
)

//go:embed static/index.html
var indexHTML []byte

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Seed fixes the first round of every session; 0 uses the clock.
	Seed int64
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{Address: ":8080"}
}

// Server is the browser frontend.
type Server struct {
	config   Config
	store    *storage.Store
	logger   *log.Logger
	upgrader websocket.Upgrader
	server   *http.Server
}

// NewServer creates a web server. The store may be nil, in which case
// scores are not kept.
func NewServer(cfg Config, store *storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade-web",
		})
	}
	return &Server{
		config: cfg,
		store:  store,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// Handler returns the HTTP routes: the page at / and the socket at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.serveIndex)
	mux.HandleFunc("GET /ws", s.serveWS)
	return mux
}

func (s *Server) serveIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		s.logger.Debug("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	logger := s.logger.With("conn", uuid.NewString())
	logger.Info("connection opened", "remote", r.RemoteAddr)

	c := newConn(ws, s.config.Seed, s.store, logger)
	if err := c.run(r.Context()); err != nil {
		logger.Warn("connection failed", "error", err)
	}
	logger.Info("connection closed", "remote", r.RemoteAddr)
}

// Serve runs the web server until ctx is cancelled, then shuts it down
// gracefully. Open sockets are closed through their request contexts.
func (s *Server) Serve(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	s.logger.Info("starting web server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
