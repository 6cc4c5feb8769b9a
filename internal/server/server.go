// Package server exposes projections over a small JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/flightpath/internal/engine"
	"github.com/theirongolddev/flightpath/internal/model"
	"github.com/theirongolddev/flightpath/internal/pipeline"
)

// Config controls the server runtime behavior.
type Config struct {
	Addr         string
	Defaults     model.Params // used for query parameters that are absent
	Catalog      *engine.Catalog
	MemoCapacity int
}

// Service serves the projection API.
type Service struct {
	cfg       Config
	log       logrus.FieldLogger
	memo      *pipeline.Memo
	registry  *prometheus.Registry
	metrics   *Metrics
	startedAt time.Time
	now       func() time.Time
}

// New returns a service with the provided config. Each service owns its
// Prometheus registry.
func New(cfg Config, log logrus.FieldLogger) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}
	if cfg.Catalog == nil {
		cfg.Catalog = engine.Default
	}
	if cfg.MemoCapacity < 1 {
		cfg.MemoCapacity = 256
	}

	s := &Service{
		cfg:       cfg,
		log:       log,
		memo:      pipeline.NewMemo(cfg.Catalog.Project, cfg.MemoCapacity),
		registry:  prometheus.NewRegistry(),
		startedAt: time.Now(),
		now:       time.Now,
	}
	s.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	s.metrics = NewMetrics(s.registry, s.memo, func() float64 {
		return time.Since(s.startedAt).Seconds()
	})
	return s
}

// SetClock replaces the time source for projections and target dates.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
	s.memo.SetClock(now)
}

// Handler returns the routed HTTP handler.
func (s *Service) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestID, s.instrument)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/v1/engines", s.handleEngines).Methods(http.MethodGet)
	r.HandleFunc("/v1/projection", s.handleProjection).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, errors.New("not found"))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	})
	return r
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.WithField("addr", s.cfg.Addr).Info("serving projection API")

	select {
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}

// writeJSON marshals v before writing the header so an encoding failure
// becomes a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Error: "encoding response: " + err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
