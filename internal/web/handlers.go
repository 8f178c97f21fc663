package web

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"github.com/cjeanneret/SurveyGo/internal/config"
	"github.com/cjeanneret/SurveyGo/internal/mission"
	"github.com/cjeanneret/SurveyGo/internal/planner"
)

// FormDefaults holds the config-derived default values shown in the form.
type FormDefaults struct {
	CruiseSpeedMPS    float64 `json:"cruise_speed_mps"`
	TurnPenaltyS      float64 `json:"turn_penalty_s"`
	BatteryMaxFlightS float64 `json:"battery_max_flight_s"`
	SensorAspectRatio float64 `json:"sensor_aspect_ratio"`
}

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	cfg      *config.Config
	staticFS fs.FS
}

// NewHandlers creates handlers resolving missions against cfg.
func NewHandlers(cfg *config.Config, staticFS fs.FS) *Handlers {
	return &Handlers{cfg: cfg, staticFS: staticFS}
}

// HandleDefaults returns the form default values (from config) as JSON.
func (h *Handlers) HandleDefaults(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(FormDefaults{
		CruiseSpeedMPS:    h.cfg.Flight.CruiseSpeedMPS,
		TurnPenaltyS:      h.cfg.Flight.TurnPenaltyS,
		BatteryMaxFlightS: h.cfg.Flight.BatteryMaxFlightS,
		SensorAspectRatio: h.cfg.Camera.SensorAspectRatio,
	})
}

// ServeIndex serves the main HTML page (root path only).
func (h *Handlers) ServeIndex(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(h.staticFS, "index.html")
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// HandlePlan handles POST /api/plan: a mission record in, the full flight
// plan out. Planning is synchronous and stateless, so there is no job to
// track and nothing to stream.
func (h *Handlers) HandlePlan(w http.ResponseWriter, r *http.Request) {
	var m mission.Mission
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	req, err := m.Resolve(h.cfg)
	if err != nil {
		writePlanError(w, err)
		return
	}

	plan, err := planner.Plan(req)
	if err != nil {
		writePlanError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plan)
}

// writePlanError maps planner error kinds to HTTP statuses: bad inputs are
// 400, a mission that cannot be flown on one battery per leg is 422.
func writePlanError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, planner.ErrInvalidGeometry), errors.Is(err, planner.ErrInvalidParameters):
		status = http.StatusBadRequest
	case errors.Is(err, planner.ErrLegExceedsBattery):
		status = http.StatusUnprocessableEntity
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
