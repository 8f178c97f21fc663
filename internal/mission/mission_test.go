package mission

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cjeanneret/SurveyGo/internal/config"
	"github.com/cjeanneret/SurveyGo/internal/planner"
)

const epsilon = 1e-9

func writeMission(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mission.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write mission file: %v", err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeMission(t, `
area:
  width_m: 300
  length_m: 500
altitude_m: 70
camera:
  horizontal_fov_deg: 78
  vertical_fov_deg: 62
overlap:
  front: 0.7
  side: 0.6
flight:
  cruise_speed_mps: 9
  turn_penalty_s: 4
  battery_max_flight_s: 900
sweep_direction: along_width
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Area.WidthM != 300 || m.Area.LengthM != 500 {
		t.Errorf("area = %+v, want 300 x 500", m.Area)
	}
	if m.AltitudeM != 70 {
		t.Errorf("altitude = %v, want 70", m.AltitudeM)
	}
	if m.Camera.HorizontalFOVDeg != 78 || m.Camera.VerticalFOVDeg != 62 {
		t.Errorf("camera = %+v, want 78/62", m.Camera)
	}
	if m.Flight.CruiseSpeedMPS != 9 || m.Flight.TurnPenaltyS != 4 || m.Flight.BatteryMaxFlightS != 900 {
		t.Errorf("flight = %+v", m.Flight)
	}
	if m.SweepDirection != "along_width" {
		t.Errorf("sweep_direction = %q", m.SweepDirection)
	}
}

// The upstream collaborator emits JSON; yaml.v3 parses it as a YAML subset.
func TestLoad_JSON(t *testing.T) {
	path := writeMission(t, `{
  "area": { "width_m": 300, "length_m": 500 },
  "altitude_m": 70,
  "camera": { "horizontal_fov_deg": 78 },
  "overlap": { "front": 0.7, "side": 0.6 }
}`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Area.LengthM != 500 || m.Camera.HorizontalFOVDeg != 78 {
		t.Errorf("mission = %+v", m)
	}
	if m.Camera.VerticalFOVDeg != 0 {
		t.Errorf("vertical FOV should be unset, got %v", m.Camera.VerticalFOVDeg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func baseMission() *Mission {
	return &Mission{
		Area:      Area{WidthM: 300, LengthM: 500},
		AltitudeM: 70,
		Camera:    Camera{HorizontalFOVDeg: 78, VerticalFOVDeg: 62},
		Overlap:   Overlap{Front: 0.7, Side: 0.6},
	}
}

func TestResolve_ConfigDefaultsFillFlightGaps(t *testing.T) {
	cfg := config.Default()
	cfg.Flight.TurnPenaltyS = 5

	req, err := baseMission().Resolve(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.CruiseSpeedMPS != 8 {
		t.Errorf("CruiseSpeedMPS = %v, want config default 8", req.CruiseSpeedMPS)
	}
	if req.TurnPenaltyS != 5 {
		t.Errorf("TurnPenaltyS = %v, want config default 5", req.TurnPenaltyS)
	}
	if req.BatteryMaxFlightS != 1200 {
		t.Errorf("BatteryMaxFlightS = %v, want config default 1200", req.BatteryMaxFlightS)
	}
}

func TestResolve_MissionFlightWinsOverConfig(t *testing.T) {
	m := baseMission()
	m.Flight = Flight{CruiseSpeedMPS: 12, TurnPenaltyS: 3, BatteryMaxFlightS: 600}

	req, err := m.Resolve(config.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.CruiseSpeedMPS != 12 || req.TurnPenaltyS != 3 || req.BatteryMaxFlightS != 600 {
		t.Errorf("req flight = %v/%v/%v, want 12/3/600", req.CruiseSpeedMPS, req.TurnPenaltyS, req.BatteryMaxFlightS)
	}
}

func TestResolve_DerivesVerticalFOV_SquareSensor(t *testing.T) {
	m := baseMission()
	m.Camera.VerticalFOVDeg = 0
	cfg := config.Default()
	cfg.Camera.SensorAspectRatio = 1.0

	req, err := m.Resolve(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(req.VerticalFOVDeg-78) > epsilon {
		t.Errorf("VerticalFOVDeg = %v, want 78 (aspect 1 means equal FOVs)", req.VerticalFOVDeg)
	}
}

func TestResolve_DerivesVerticalFOV_FourThirds(t *testing.T) {
	m := baseMission()
	m.Camera.VerticalFOVDeg = 0
	cfg := config.Default()
	cfg.Camera.SensorAspectRatio = 4.0 / 3.0

	req, err := m.Resolve(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// tan(vfov/2) = tan(39°) / (4/3)
	want := 2.0 * math.Atan(math.Tan(39.0*math.Pi/180.0)*3.0/4.0) * 180.0 / math.Pi
	if math.Abs(req.VerticalFOVDeg-want) > epsilon {
		t.Errorf("VerticalFOVDeg = %v, want %v", req.VerticalFOVDeg, want)
	}
	if req.VerticalFOVDeg >= req.HorizontalFOVDeg {
		t.Errorf("vertical FOV must be narrower than horizontal on a wide sensor")
	}
}

func TestResolve_ExplicitVerticalFOVSkipsDerivation(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.SensorAspectRatio = 4.0 / 3.0

	req, err := baseMission().Resolve(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.VerticalFOVDeg != 62 {
		t.Errorf("VerticalFOVDeg = %v, want the mission's explicit 62", req.VerticalFOVDeg)
	}
}

// No guessing: a missing vertical FOV without a configured aspect ratio is
// rejected.
func TestResolve_MissingVerticalFOVRejected(t *testing.T) {
	m := baseMission()
	m.Camera.VerticalFOVDeg = 0

	_, err := m.Resolve(config.Default())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, planner.ErrInvalidParameters) {
		t.Errorf("expected ErrInvalidParameters, got: %v", err)
	}
}

func TestResolve_SweepOverride(t *testing.T) {
	cases := []struct {
		in   string
		want planner.SweepDirection
	}{
		{"", ""},
		{"along_length", planner.SweepAlongLength},
		{"along_width", planner.SweepAlongWidth},
	}
	for _, tc := range cases {
		m := baseMission()
		m.SweepDirection = tc.in
		req, err := m.Resolve(config.Default())
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if req.SweepOverride != tc.want {
			t.Errorf("%q: SweepOverride = %q, want %q", tc.in, req.SweepOverride, tc.want)
		}
	}
}

func TestResolve_UnknownSweepRejected(t *testing.T) {
	m := baseMission()
	m.SweepDirection = "diagonal"

	_, err := m.Resolve(config.Default())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, planner.ErrInvalidParameters) {
		t.Errorf("expected ErrInvalidParameters, got: %v", err)
	}
}

// Loaded mission plus defaults must plan end to end.
func TestResolve_PlansEndToEnd(t *testing.T) {
	path := writeMission(t, `
area:
  width_m: 300
  length_m: 500
altitude_m: 70
camera:
  horizontal_fov_deg: 78
  vertical_fov_deg: 78
overlap:
  front: 0.7
  side: 0.6
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	req, err := m.Resolve(config.Default())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	plan, err := planner.Plan(req)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if plan.CoverageSummary.NumLegs < 1 {
		t.Errorf("plan has %d legs", plan.CoverageSummary.NumLegs)
	}
}
