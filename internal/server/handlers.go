package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/theirongolddev/flightpath/internal/engine"
	"github.com/theirongolddev/flightpath/internal/model"
)

// HealthResponse is served at /healthz.
type HealthResponse struct {
	Status    string    `json:"status"`
	StartedAt time.Time `json:"started_at"`
	UptimeSec int64     `json:"uptime_sec"`
}

// EngineInfo describes one return profile at /v1/engines.
type EngineInfo struct {
	Name         string  `json:"name"`
	Label        string  `json:"label"`
	Description  string  `json:"description,omitempty"`
	AnnualReturn float64 `json:"annual_return"`
	Volatility   float64 `json:"volatility"`
	CycleMonths  int     `json:"cycle_months"`
	Default      bool    `json:"default"`
}

// ProjectionResponse is served at /v1/projection.
type ProjectionResponse struct {
	Params      model.Params          `json:"params"`
	Metrics     model.Metrics         `json:"metrics"`
	Chart       []model.ChartPoint    `json:"chart"`
	FinalValue  float64               `json:"final_value"`
	YearsToGoal *float64              `json:"years_to_goal"`
	Timeline    []model.TimelinePoint `json:"timeline,omitempty"`
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		StartedAt: s.startedAt,
		UptimeSec: int64(time.Since(s.startedAt).Seconds()),
	})
}

func (s *Service) handleEngines(w http.ResponseWriter, _ *http.Request) {
	profiles := s.cfg.Catalog.Profiles()
	out := make([]EngineInfo, len(profiles))
	for i, p := range profiles {
		out[i] = EngineInfo{
			Name:         p.Name,
			Label:        p.Label,
			Description:  p.Description,
			AnnualReturn: p.AnnualReturn,
			Volatility:   p.Volatility,
			CycleMonths:  p.CycleMonths,
			Default:      p.Name == engine.DefaultEngine,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Service) handleProjection(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p, err := parseParams(q, s.cfg.Defaults)
	if err != nil {
		s.metrics.ProjectionErrors.WithLabelValues("bad_query").Inc()
		writeError(w, http.StatusBadRequest, err)
		return
	}

	dash, err := s.memo.Dashboard(p)
	if err != nil {
		status, reason := classify(err)
		s.metrics.ProjectionErrors.WithLabelValues(reason).Inc()
		if status >= http.StatusInternalServerError {
			logger(r).WithError(err).Error("projection failed")
		}
		writeError(w, status, err)
		return
	}

	resp := ProjectionResponse{
		Params:      dash.Projection.Params,
		Metrics:     dash.Metrics,
		Chart:       dash.Chart,
		FinalValue:  dash.Projection.FinalValue,
		YearsToGoal: dash.Projection.YearsToGoal,
	}
	if b, _ := strconv.ParseBool(q.Get("timeline")); b {
		resp.Timeline = dash.Projection.Timeline
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseParams overlays query values on defaults.
func parseParams(q url.Values, defaults model.Params) (model.Params, error) {
	p := defaults

	floats := []struct {
		key string
		dst *float64
	}{
		{"initial", &p.InitialInvestment},
		{"monthly", &p.MonthlyInvestment},
		{"goal", &p.Goal},
	}
	for _, f := range floats {
		raw := q.Get(f.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.Params{}, fmt.Errorf("%s: not a number: %q", f.key, raw)
		}
		*f.dst = v
	}

	if raw := q.Get("horizon"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return model.Params{}, fmt.Errorf("horizon: not an integer: %q", raw)
		}
		p.HorizonYears = n
	}
	if e := q.Get("engine"); e != "" {
		p.Engine = model.EngineType(e)
	}
	return p, nil
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, engine.ErrUnknownEngine):
		return http.StatusBadRequest, "unknown_engine"
	case errors.Is(err, engine.ErrInvalidAmount),
		errors.Is(err, engine.ErrInvalidGoal),
		errors.Is(err, engine.ErrInvalidHorizon):
		return http.StatusBadRequest, "invalid_params"
	case errors.Is(err, engine.ErrNonFinite):
		return http.StatusBadRequest, "overflow"
	case errors.Is(err, engine.ErrInvalidProfile):
		return http.StatusBadRequest, "invalid_profile"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
