// Package planner computes lawnmower survey coverage: ground footprint from
// camera optics, boustrophedon leg layout over a rectangular area, and
// flight-time and battery segmentation over the resulting path. Plan is a
// pure function: it reads nothing but its request and returns a fresh
// FlightPlan, so concurrent invocations need no coordination.
package planner

// Request is the validated mission geometry description the engine
// consumes. All lengths are metres, angles degrees, times seconds,
// overlaps fractions in [0, 1).
type Request struct {
	AreaWidthM        float64
	AreaLengthM       float64
	AltitudeM         float64
	HorizontalFOVDeg  float64
	VerticalFOVDeg    float64
	FrontOverlap      float64
	SideOverlap       float64
	CruiseSpeedMPS    float64
	TurnPenaltyS      float64
	BatteryMaxFlightS float64

	// SweepOverride pins the sweep direction; empty selects automatically.
	SweepOverride SweepDirection
}

// Plan runs the three stages — footprint resolution, lawnmower tiling,
// flight and battery estimation — and assembles the FlightPlan. Either a
// complete, internally consistent plan is returned or the first violated
// precondition is reported; there is no partial success.
func Plan(req Request) (*FlightPlan, error) {
	fp, err := ResolveFootprint(req.HorizontalFOVDeg, req.VerticalFOVDeg, req.AltitudeM)
	if err != nil {
		return nil, err
	}

	tiling, err := TileArea(req.AreaWidthM, req.AreaLengthM, fp, req.SideOverlap, req.SweepOverride)
	if err != nil {
		return nil, err
	}

	est, err := EstimateFlight(tiling.Legs, fp, FlightParams{
		CruiseSpeedMPS:    req.CruiseSpeedMPS,
		TurnPenaltyS:      req.TurnPenaltyS,
		BatteryMaxFlightS: req.BatteryMaxFlightS,
		FrontOverlap:      req.FrontOverlap,
		AltitudeM:         req.AltitudeM,
	})
	if err != nil {
		return nil, err
	}

	return &FlightPlan{
		CoverageSummary: CoverageSummary{
			SweepDirection:     tiling.Sweep,
			SwathWidthM:        tiling.SwathWidthM,
			LegSpacingM:        tiling.LegSpacingM,
			NumLegs:            len(tiling.Legs),
			LegLengthM:         tiling.LegLengthM,
			TotalPathLengthM:   tiling.TotalPathLengthM,
			TotalFlightTimeMin: est.TotalFlightMin,
			NumBatterySegments: len(est.Segments),
		},
		Legs:            tiling.Legs,
		Waypoints:       est.Waypoints,
		BatterySegments: est.Segments,
	}, nil
}
