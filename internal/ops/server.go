package ops

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"logbench/internal/shared/loggers"
	"logbench/internal/shared/metrics"
)

// Server is the optional operational HTTP listener: prometheus metrics and a
// liveness probe. Both CLI tools are batch jobs, so the listener only runs
// when an address is configured, and it dies with the process.
type Server struct {
	httpServer *http.Server
	logger     loggers.Logger
}

func NewServer(addr string, logger loggers.Logger) *Server {
	router := chi.NewRouter()
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start serves in a background goroutine and returns immediately. Listener
// failures are logged, not fatal: losing /metrics must never kill a
// generation or aggregation run.
func (s *Server) Start() {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("starting ops listener")
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Warn().Err(err).Msg("ops listener failed")
		}
	}()
}

// Shutdown stops the listener gracefully.
func (s *Server) Shutdown(ctx context.Context) {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("ops listener shutdown failed")
	}
}
