// Package httpapi implements the HTTP endpoint of the query service.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/zxc72608/bigquery/internal/constants"
	"github.com/zxc72608/bigquery/internal/warehouse"
)

// Server is the HTTP endpoint server.
type Server struct {
	httpServer *http.Server
	handler    http.Handler
	listener   net.Listener
	logger     zerolog.Logger
}

// Config contains dependencies for creating an HTTP endpoint server.
type Config struct {
	// Host and Port form the listen address. Port 0 picks a free port.
	Host string
	Port int

	// Executor runs filter queries. Required.
	Executor warehouse.Executor

	// RowLimit, Columns and QueryTimeout shape each filter query.
	RowLimit     int
	Columns      string
	QueryTimeout time.Duration

	// Logger is the logger instance.
	Logger zerolog.Logger
}

// New creates a new HTTP endpoint server.
func New(cfg Config) (*Server, error) {
	if cfg.Executor == nil {
		return nil, fmt.Errorf("warehouse executor is required")
	}

	logger := cfg.Logger.With().Str("component", "httpapi").Logger()

	host := cfg.Host
	if host == "" {
		host = constants.DefaultHost
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", serveIndex)
	mux.Handle(constants.DefaultQueryPath, NewQueryHandler(QueryHandlerConfig{
		Executor: cfg.Executor,
		RowLimit: cfg.RowLimit,
		Columns:  cfg.Columns,
		Timeout:  cfg.QueryTimeout,
		Logger:   logger,
	}))
	logger.Debug().Str("path", constants.DefaultQueryPath).Msg("Registered query handler")

	healthMux := http.NewServeMux()
	healthMux.HandleFunc(constants.DefaultHealthPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK\n"))
	})

	// Health endpoint bypasses request logging.
	logged := NewRequestLogMiddleware(logger).Handler(mux)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == constants.DefaultHealthPath {
			healthMux.ServeHTTP(w, r)
			return
		}
		logged.ServeHTTP(w, r)
	})

	httpServer := &http.Server{
		Addr:              net.JoinHostPort(host, strconv.Itoa(cfg.Port)),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		IdleTimeout:       constants.DefaultIdleTimeout,
	}

	return &Server{
		httpServer: httpServer,
		handler:    handler,
		logger:     logger,
	}, nil
}

// Handler returns the routed handler without the listener, for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start binds the listen address and serves in a background goroutine.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	s.listener = ln

	s.logger.Info().
		Str("addr", ln.Addr().String()).
		Msg("Starting HTTP server")

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("HTTP server error")
		}
	}()

	return nil
}

// Stop gracefully stops the server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info().Msg("Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the bound address once started, else the configured one.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpServer.Addr
}

// URL returns the server URL.
func (s *Server) URL() string {
	return fmt.Sprintf("http://%s", s.Addr())
}
