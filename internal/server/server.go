// Package server exposes the transform catalog over HTTP and keeps one
// editing session per websocket connection.
//
// Routes:
//
//	GET  /health          health report
//	GET  /api/transforms  catalog listing, optionally ?group=
//	POST /api/transform   stateless single transform
//	GET  /ws              session protocol, see WSMessage
package server

import (
	"bufio"
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	mdwerror "github.com/msto63/wandler/foundation/core/error"
	"github.com/msto63/wandler/internal/transform"
	"github.com/msto63/wandler/pkg/core/config"
	"github.com/msto63/wandler/pkg/core/health"
	"github.com/msto63/wandler/pkg/core/logging"
	"github.com/msto63/wandler/pkg/core/version"
)

// Config holds server configuration
type Config struct {
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
	MaxSessions    int
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return FromAppConfig(config.DefaultConfig().Server)
}

// FromAppConfig converts the [server] section of the application config
func FromAppConfig(c config.ServerConfig) Config {
	return Config{
		Host:           c.Host,
		Port:           c.Port,
		ReadTimeout:    c.ReadTimeout.Duration,
		WriteTimeout:   c.WriteTimeout.Duration,
		AllowedOrigins: c.AllowedOrigins,
		MaxSessions:    c.MaxSessions,
	}
}

// Server is the wandler session host
type Server struct {
	httpServer *http.Server
	catalog    *transform.Catalog
	health     *health.Registry
	logger     *logging.Logger
	config     Config
	sessions   atomic.Int64
}

// New creates a server for the given catalog. A nil catalog selects the
// built-in one.
func New(cfg Config, catalog *transform.Catalog) *Server {
	if catalog == nil {
		catalog = transform.Default()
	}

	s := &Server{
		catalog: catalog,
		logger:  logging.New("server"),
		config:  cfg,
	}

	s.health = health.NewRegistry("wandler", version.Release)
	s.health.Register(health.CatalogCheck(catalog))
	s.health.Register(health.SessionsCheck(s.Sessions, cfg.MaxSessions))
	s.health.Register(health.ClipboardCheck())

	s.httpServer = &http.Server{
		Addr:         s.Address(),
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler returns the routed handler with request logging
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /health", s.health.Handler(5*time.Second))
	mux.HandleFunc("GET /api/transforms", s.handleTransforms)
	mux.HandleFunc("POST /api/transform", s.handleTransform)
	mux.HandleFunc("OPTIONS /api/", s.handlePreflight)
	mux.Handle("GET /ws", newWebSocketHandler(s))
	return loggingMiddleware(s.logger, mux)
}

// Start listens and serves until the server is stopped
func (s *Server) Start() error {
	s.logger.Info("Starting wandler session host", "address", s.Address())

	ln, err := net.Listen("tcp", s.Address())
	if err != nil {
		return mdwerror.Wrap(err, "failed to listen").
			WithCode(mdwerror.CodeServiceStartup).
			WithOperation("server.start").
			WithDetail("address", s.Address())
	}
	return s.Serve(ln)
}

// Serve serves on an existing listener
func (s *Server) Serve(ln net.Listener) error {
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping wandler session host", "sessions", s.Sessions())
	return s.httpServer.Shutdown(ctx)
}

// Address returns host:port
func (s *Server) Address() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}

// Sessions returns the number of open websocket sessions
func (s *Server) Sessions() int {
	return int(s.sessions.Load())
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}

// loggingMiddleware adds request logging
func loggingMiddleware(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap response writer to capture status code
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		logger.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapper.statusCode,
			"duration", time.Since(start),
		)
	})
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Hijack lets the websocket upgrader take over the connection
func (w *responseWrapper) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	w.statusCode = http.StatusSwitchingProtocols
	return h.Hijack()
}
