package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/iono-band-advisor/internal/domain"
	"github.com/couchcryptid/iono-band-advisor/internal/observability"
)

// ConditionsProvider produces a band advisory for a station and lookback.
type ConditionsProvider interface {
	Conditions(ctx context.Context, station, lookback string) (domain.Advisory, error)
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes health, readiness, metrics, and band-condition HTTP
// endpoints.
type Server struct {
	httpServer     *http.Server
	provider       ConditionsProvider
	defaultStation string
	metrics        *observability.Metrics
	logger         *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics, and
// /v1/conditions routes. Requests that omit the station query parameter are
// answered for defaultStation.
func NewServer(addr string, provider ConditionsProvider, ready ReadinessChecker, defaultStation string, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		provider:       provider,
		defaultStation: defaultStation,
		metrics:        metrics,
		logger:         logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /v1/conditions", s.handleConditions)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// handleConditions serves the current advisory for the requested station and
// lookback. Unset parameters fall back to the watched station and the default
// lookback.
func (s *Server) handleConditions(w http.ResponseWriter, r *http.Request) {
	station := r.URL.Query().Get("station")
	if station == "" {
		station = s.defaultStation
	}
	lookback := r.URL.Query().Get("lookback")
	if lookback == "" {
		lookback = domain.DefaultLookback
	}

	adv, err := s.provider.Conditions(r.Context(), station, lookback)
	if err != nil {
		status, outcome := conditionsError(err)
		s.metrics.ConditionsRequests.WithLabelValues(outcome).Inc()
		s.logger.Warn("conditions request failed",
			"station", station,
			"lookback", lookback,
			"error", err,
		)
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	s.metrics.ConditionsRequests.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, adv)
}

// conditionsError maps an advisory error to an HTTP status and a metric
// outcome label. Bad input is the caller's fault, missing soundings are the
// station's, anything else is the upstream API's.
func conditionsError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnknownStation), errors.Is(err, domain.ErrInvalidLookback):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, domain.ErrNoData), errors.Is(err, domain.ErrNoValidData):
		return http.StatusNotFound, "no_data"
	default:
		return http.StatusBadGateway, "upstream_error"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort health response
}
