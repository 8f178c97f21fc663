package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/cjeanneret/SurveyGo/internal/config"
	"github.com/cjeanneret/SurveyGo/internal/debug"
	"github.com/cjeanneret/SurveyGo/internal/mission"
	"github.com/cjeanneret/SurveyGo/internal/planner"
	"github.com/cjeanneret/SurveyGo/internal/web"
)

func main() {
	// CLI flags
	webPort := &webPortFlag{defaultPort: 8080}
	flag.Var(webPort, "web", "start plan preview server on port; -web= for default 8080, -web 8980 for custom port")
	cfgPath := flag.String("config", "", "path to config file; empty uses built-in defaults")
	missionPath := flag.String("mission", "", "path to mission file (yaml or json)")
	outPath := flag.String("out", "", "write plan JSON to this file instead of stdout")
	altitudeM := flag.Float64("altitude_m", 0, "override mission altitude in metres")
	sideOverlap := flag.Float64("side_overlap", 0, "override side overlap fraction (0-1)")
	frontOverlap := flag.Float64("front_overlap", 0, "override front overlap fraction (0-1)")
	cruiseSpeed := flag.Float64("cruise_speed_mps", 0, "override cruise speed in m/s")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load configuration (built-in defaults when no file is given)
	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("load config failed: %v", err)
		}
		cfg = loaded
	}

	// Initialize debug system (stderr, so the plan JSON on stdout stays clean)
	debug.Init(cfg.Defaults.DebugLevel, os.Stderr)
	debug.Section("Initialization")
	debug.Value("Config path", *cfgPath)
	debug.Value("Debug level", cfg.Defaults.DebugLevel)

	if port := webPort.port(); port > 0 {
		srv := web.NewServer(fmt.Sprintf(":%d", port), cfg)
		if err := srv.Run(ctx); err != nil {
			log.Fatalf("web server: %v", err)
		}
		return
	}

	if *missionPath == "" {
		log.Fatal("either -mission or -web is required")
	}

	o := overrides{
		AltitudeM:      *altitudeM,
		SideOverlap:    *sideOverlap,
		FrontOverlap:   *frontOverlap,
		CruiseSpeedMPS: *cruiseSpeed,
	}
	if err := validateOverrides(o); err != nil {
		log.Fatalf("invalid CLI override: %v", err)
	}

	m, err := mission.Load(*missionPath)
	if err != nil {
		log.Fatalf("load mission failed: %v", err)
	}
	applyOverrides(m, o)

	req, err := m.Resolve(cfg)
	if err != nil {
		log.Fatalf("resolve mission failed: %v", err)
	}

	plan, err := planner.Plan(req)
	if err != nil {
		log.Fatalf("planning failed: %v", err)
	}
	reportPlan(plan)

	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		log.Fatalf("encode plan failed: %v", err)
	}
	data = append(data, '\n')

	if *outPath != "" {
		if err := os.WriteFile(*outPath, data, 0o644); err != nil {
			log.Fatalf("write plan failed: %v", err)
		}
		return
	}
	os.Stdout.Write(data)
}

// reportPlan emits the plan through the debug system, most important first.
func reportPlan(plan *planner.FlightPlan) {
	s := plan.CoverageSummary
	debug.Summary("Flight Plan Summary")
	debug.Coverage(s.NumLegs, string(s.SweepDirection), s.TotalPathLengthM, s.TotalFlightTimeMin)
	debug.Info("Battery segments: %d, waypoints: %d", s.NumBatterySegments, len(plan.Waypoints))

	debug.Section("Coverage Details")
	debug.Value("Swath width (m)", s.SwathWidthM)
	debug.Value("Leg spacing (m)", s.LegSpacingM)
	debug.Value("Leg length (m)", s.LegLengthM)
	debug.Value("Total path (m)", s.TotalPathLengthM)
	debug.Value("Flight time (min)", s.TotalFlightTimeMin)

	for _, leg := range plan.Legs {
		debug.Leg(leg.Index, leg.Start.XM, leg.Start.YM, leg.End.XM, leg.End.YM, leg.HeadingDeg)
	}
	for _, seg := range plan.BatterySegments {
		debug.Segment(seg.SegmentIndex, seg.LegStartIndex, seg.LegEndIndex, seg.SegmentFlightS)
	}
	for i, wp := range plan.Waypoints {
		debug.Trace("Waypoint %d: (%.1f, %.1f) leg %d", i, wp.XM, wp.YM, wp.LegIndex)
	}
}

// overrides holds mission parameters that can override the mission file.
// Zero values mean "use the mission file".
type overrides struct {
	AltitudeM      float64
	SideOverlap    float64
	FrontOverlap   float64
	CruiseSpeedMPS float64
}

// validateOverrides checks that non-zero CLI overrides are within valid ranges.
// Zero values are ignored (they mean "use the mission file").
func validateOverrides(o overrides) error {
	if o.AltitudeM != 0 {
		if math.IsNaN(o.AltitudeM) || math.IsInf(o.AltitudeM, 0) || o.AltitudeM <= 0 || o.AltitudeM > 10000 {
			return fmt.Errorf("altitude_m must be between 0 and 10000, got %g", o.AltitudeM)
		}
	}
	if o.SideOverlap != 0 {
		if math.IsNaN(o.SideOverlap) || o.SideOverlap <= 0 || o.SideOverlap >= 1 {
			return fmt.Errorf("side_overlap must be in (0, 1), got %g", o.SideOverlap)
		}
	}
	if o.FrontOverlap != 0 {
		if math.IsNaN(o.FrontOverlap) || o.FrontOverlap <= 0 || o.FrontOverlap >= 1 {
			return fmt.Errorf("front_overlap must be in (0, 1), got %g", o.FrontOverlap)
		}
	}
	if o.CruiseSpeedMPS != 0 {
		if math.IsNaN(o.CruiseSpeedMPS) || math.IsInf(o.CruiseSpeedMPS, 0) || o.CruiseSpeedMPS <= 0 || o.CruiseSpeedMPS > 100 {
			return fmt.Errorf("cruise_speed_mps must be between 0 and 100, got %g", o.CruiseSpeedMPS)
		}
	}
	return nil
}

// applyOverrides mutates m with overrides. Only non-zero override values are applied.
func applyOverrides(m *mission.Mission, o overrides) {
	if o.AltitudeM > 0 {
		m.AltitudeM = o.AltitudeM
	}
	if o.SideOverlap > 0 {
		m.Overlap.Side = o.SideOverlap
	}
	if o.FrontOverlap > 0 {
		m.Overlap.Front = o.FrontOverlap
	}
	if o.CruiseSpeedMPS > 0 {
		m.Flight.CruiseSpeedMPS = o.CruiseSpeedMPS
	}
}

// webPortFlag implements flag.Value for -web: 0 = disabled, -web= or -web 8080 → 8080, -web 8980 → 8980.
type webPortFlag struct {
	val         int
	defaultPort int
}

func (w *webPortFlag) String() string {
	if w.val == 0 {
		return "0"
	}
	return strconv.Itoa(w.val)
}

func (w *webPortFlag) Set(s string) error {
	if s == "" {
		w.val = w.defaultPort
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v <= 0 || v > 65535 {
		return fmt.Errorf("port must be 1-65535, got %d", v)
	}
	w.val = v
	return nil
}

func (w *webPortFlag) port() int { return w.val }
