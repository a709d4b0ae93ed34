// Package server exposes the analysis engine over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/assignstat-go/internal/config"
	"github.com/ukaji3/assignstat-go/pkg/assignstat"
)

// Server wires the router, metrics and http.Server.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	clock   assignstat.Clock
	metrics *Metrics
	router  chi.Router
	http    *http.Server
}

// Option customises a Server.
type Option func(*Server)

// WithClock overrides the clock used for the reference date.
func WithClock(c assignstat.Clock) Option {
	return func(s *Server) { s.clock = c }
}

// New creates a server from configuration.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		clock:   assignstat.SystemClock{},
		metrics: NewMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = s.setupRouter()
	s.http = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", s.metrics.Handler())

	analyze := NewAnalyzeHandler(
		s.cfg.Analysis.Timezone,
		s.clock,
		s.cfg.Server.MaxUploadBytes,
		s.metrics,
		s.logger,
	)
	r.Route("/api/v1", func(r chi.Router) {
		if rl := s.cfg.Server.RateLimit; rl.Enabled {
			r.Use(NewRateLimiter(rl.RPS, rl.Burst, s.logger).Handler)
		}
		r.Mount("/", analyze.Routes())
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.InfoContext(ctx, "server listening", slog.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down server")
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// requestLogger logs one line per request.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)))
		})
	}
}
