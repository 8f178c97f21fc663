// Package mission defines the structured mission record the upstream
// specification collaborator produces, and resolves it against planner
// defaults into a complete planning request.
package mission

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cjeanneret/SurveyGo/internal/config"
	"github.com/cjeanneret/SurveyGo/internal/planner"
)

// Area is the rectangular survey area.
type Area struct {
	WidthM  float64 `yaml:"width_m" json:"width_m"`
	LengthM float64 `yaml:"length_m" json:"length_m"`
}

// Camera gives the camera field of view. VerticalFOVDeg is optional; when
// omitted it is derived from the configured sensor aspect ratio.
type Camera struct {
	HorizontalFOVDeg float64 `yaml:"horizontal_fov_deg" json:"horizontal_fov_deg"`
	VerticalFOVDeg   float64 `yaml:"vertical_fov_deg,omitempty" json:"vertical_fov_deg,omitempty"`
}

// Overlap holds the image-overlap fractions in [0, 1).
type Overlap struct {
	Front float64 `yaml:"front" json:"front"`
	Side  float64 `yaml:"side" json:"side"`
}

// Flight holds flight parameters. Zero values fall back to the planner
// defaults from configuration.
type Flight struct {
	CruiseSpeedMPS    float64 `yaml:"cruise_speed_mps,omitempty" json:"cruise_speed_mps,omitempty"`
	TurnPenaltyS      float64 `yaml:"turn_penalty_s,omitempty" json:"turn_penalty_s,omitempty"`
	BatteryMaxFlightS float64 `yaml:"battery_max_flight_s,omitempty" json:"battery_max_flight_s,omitempty"`
}

// Mission is the input record consumed from the mission-specification
// collaborator. It loads from YAML or JSON (JSON being a YAML subset).
type Mission struct {
	Area      Area    `yaml:"area" json:"area"`
	AltitudeM float64 `yaml:"altitude_m" json:"altitude_m"`
	Camera    Camera  `yaml:"camera" json:"camera"`
	Overlap   Overlap `yaml:"overlap" json:"overlap"`
	Flight    Flight  `yaml:"flight,omitempty" json:"flight,omitempty"`

	// SweepDirection optionally pins the sweep: "along_length" or
	// "along_width". Empty lets the tiler choose.
	SweepDirection string `yaml:"sweep_direction,omitempty" json:"sweep_direction,omitempty"`
}

// Load reads a mission record from a YAML or JSON file.
func Load(path string) (*Mission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mission file: %w", err)
	}
	var m Mission
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal mission: %w", err)
	}
	return &m, nil
}

// Resolve merges configuration defaults into the record and returns the
// complete planning request. Flight parameters the mission omits come from
// cfg; a missing vertical FOV is derived from the configured sensor aspect
// ratio, and rejected when no aspect ratio is configured (the planner never
// guesses geometry).
func (m *Mission) Resolve(cfg *config.Config) (planner.Request, error) {
	req := planner.Request{
		AreaWidthM:        m.Area.WidthM,
		AreaLengthM:       m.Area.LengthM,
		AltitudeM:         m.AltitudeM,
		HorizontalFOVDeg:  m.Camera.HorizontalFOVDeg,
		VerticalFOVDeg:    m.Camera.VerticalFOVDeg,
		FrontOverlap:      m.Overlap.Front,
		SideOverlap:       m.Overlap.Side,
		CruiseSpeedMPS:    m.Flight.CruiseSpeedMPS,
		TurnPenaltyS:      m.Flight.TurnPenaltyS,
		BatteryMaxFlightS: m.Flight.BatteryMaxFlightS,
	}

	if req.CruiseSpeedMPS == 0 {
		req.CruiseSpeedMPS = cfg.Flight.CruiseSpeedMPS
	}
	if req.TurnPenaltyS == 0 {
		req.TurnPenaltyS = cfg.Flight.TurnPenaltyS
	}
	if req.BatteryMaxFlightS == 0 {
		req.BatteryMaxFlightS = cfg.Flight.BatteryMaxFlightS
	}

	if req.VerticalFOVDeg == 0 {
		if cfg.Camera.SensorAspectRatio <= 0 {
			return planner.Request{}, fmt.Errorf(
				"%w: vertical_fov_deg missing and no sensor_aspect_ratio configured",
				planner.ErrInvalidParameters)
		}
		req.VerticalFOVDeg = deriveVerticalFOV(req.HorizontalFOVDeg, cfg.Camera.SensorAspectRatio)
	}

	switch m.SweepDirection {
	case "":
		// tiler chooses
	case string(planner.SweepAlongLength):
		req.SweepOverride = planner.SweepAlongLength
	case string(planner.SweepAlongWidth):
		req.SweepOverride = planner.SweepAlongWidth
	default:
		return planner.Request{}, fmt.Errorf("%w: sweep_direction must be %q or %q, got %q",
			planner.ErrInvalidParameters, planner.SweepAlongLength, planner.SweepAlongWidth, m.SweepDirection)
	}

	return req, nil
}

// deriveVerticalFOV computes the vertical FOV from the horizontal one and
// the sensor aspect ratio (width/height):
// tan(vfov/2) = tan(hfov/2) / aspect.
func deriveVerticalFOV(horizontalFOVDeg, aspect float64) float64 {
	halfRad := horizontalFOVDeg * math.Pi / 360.0
	return 2.0 * math.Atan(math.Tan(halfRad)/aspect) * 180.0 / math.Pi
}
