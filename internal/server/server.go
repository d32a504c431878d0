package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/agbru/ghlookup/internal/logging"
	"github.com/agbru/ghlookup/internal/metrics"
)

// ShutdownTimeout bounds graceful shutdown of the listener.
const ShutdownTimeout = 5 * time.Second

// Server exposes /metrics and /healthz for a running ghlookup session.
type Server struct {
	addr     string
	router   chi.Router
	metrics  *Metrics
	runtime  *metrics.RuntimeCollector
	security SecurityConfig
	logger   logging.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithSecurityConfig overrides DefaultSecurityConfig.
func WithSecurityConfig(c SecurityConfig) Option {
	return func(s *Server) { s.security = c }
}

// New builds a server that serves the registry of rec on addr.
func New(addr string, rec *metrics.LookupRecorder, opts ...Option) *Server {
	s := &Server{
		addr:     addr,
		metrics:  NewMetrics(rec.Registry()),
		runtime:  metrics.NewRuntimeCollector(),
		security: DefaultSecurityConfig(),
		logger:   logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return SecurityMiddleware(s.security, s.metricsMiddleware(next.ServeHTTP))
	})
	r.Get("/metrics", s.handleMetrics)
	r.Get("/healthz", s.handleHealth)
	s.router = r
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("metrics listener started", logging.String("addr", s.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("metrics listener stopped")
	return nil
}

// metricsMiddleware tracks active requests and per-path counts.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.ObserveRequest(routeLabel(r), status, time.Since(start))
	}
}

// UnmatchedRoute labels requests that hit no registered route, keeping
// the path label bounded.
const UnmatchedRoute = "unmatched"

// routeLabel returns the matched chi route pattern. It is only known once
// routing has run, so call it after the wrapped handler returns.
func routeLabel(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return UnmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return UnmatchedRoute
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("rejected metrics request", logging.String("method", r.Method))
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

type healthResponse struct {
	Status string `json:"status"`
	metrics.RuntimeSnapshot
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(healthResponse{Status: "ok", RuntimeSnapshot: s.runtime.Snapshot()}); err != nil {
		s.logger.Error("encoding health response", err)
	}
}
