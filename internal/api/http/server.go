package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Config holds REST server configuration.
type Config struct {
	Addr string
	// RequestTimeout bounds how long a generate call may wait for its job.
	// Zero disables the bound. The job itself is not cancelled.
	RequestTimeout time.Duration
	// RateLimit is requests per second on the /v1 routes; zero disables it.
	RateLimit float64
	RateBurst int
	Build     BuildInfo
}

// Server is the REST front end.
type Server struct {
	config  Config
	handler *GenerationHandler
	limiter *rate.Limiter
	logger  *slog.Logger
	server  *http.Server
}

func NewServer(cfg Config, service GenerationService, logger *slog.Logger) *Server {
	s := &Server{
		config:  cfg,
		handler: NewGenerationHandler(service, cfg.Build, logger),
		logger:  logger.With("component", "rest-server"),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return s
}

// Routes builds the router. Exposed for tests.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(instrumentMiddleware)

	r.Get("/health", s.handler.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(throttleMiddleware(s.limiter))
		}
		if s.config.RequestTimeout > 0 {
			r.Use(middleware.Timeout(s.config.RequestTimeout))
		}
		s.handler.RegisterRoutes(r)
	})

	return r
}

// Start serves until ctx is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("rest listen on %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.server = &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if s.config.RequestTimeout > 0 {
		s.server.WriteTimeout = s.config.RequestTimeout + 10*time.Second
	}

	s.logger.Info("REST server starting", "listen", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("REST server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("rest server shutdown failed: %w", err)
		}
		return nil
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return fmt.Errorf("rest server error: %w", err)
	}
}
