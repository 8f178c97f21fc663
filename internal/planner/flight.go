package planner

import (
	"fmt"
	"math"
)

// FlightParams are the kinematic and energy inputs of the estimator.
type FlightParams struct {
	CruiseSpeedMPS    float64
	TurnPenaltyS      float64 // fixed time cost per leg-to-leg turn
	BatteryMaxFlightS float64
	FrontOverlap      float64
	AltitudeM         float64
}

// FlightEstimate is the timing side of the plan: trigger waypoints, battery
// segmentation, and total flight time.
type FlightEstimate struct {
	Waypoints       []Waypoint
	Segments        []BatterySegment
	TotalFlightS    float64
	TotalFlightMin  float64
	TriggerSpacingM float64
}

// EstimateFlight walks the legs in visiting order, placing camera-trigger
// waypoints and closing battery segments. The turn penalty is charged
// between legs only, never before the first or after the last, and each
// leg's inbound turn is attributed to the segment that leg lands in, so
// segment times always sum to the total flight time.
func EstimateFlight(legs []Leg, fp Footprint, p FlightParams) (*FlightEstimate, error) {
	if math.IsNaN(p.CruiseSpeedMPS) || p.CruiseSpeedMPS <= 0 {
		return nil, fmt.Errorf("%w: cruise_speed_mps must be > 0, got %g", ErrInvalidParameters, p.CruiseSpeedMPS)
	}
	if math.IsNaN(p.TurnPenaltyS) || p.TurnPenaltyS < 0 {
		return nil, fmt.Errorf("%w: turn_penalty_s must be >= 0, got %g", ErrInvalidParameters, p.TurnPenaltyS)
	}
	if math.IsNaN(p.BatteryMaxFlightS) || p.BatteryMaxFlightS <= 0 {
		return nil, fmt.Errorf("%w: battery_max_flight_s must be > 0, got %g", ErrInvalidParameters, p.BatteryMaxFlightS)
	}
	if math.IsNaN(p.FrontOverlap) || p.FrontOverlap < 0 || p.FrontOverlap >= 1 {
		return nil, fmt.Errorf("%w: front_overlap must be in [0, 1), got %g", ErrInvalidParameters, p.FrontOverlap)
	}
	if fp.AlongTrackM <= 0 {
		return nil, fmt.Errorf("%w: along-track footprint must be > 0, got %g", ErrInvalidGeometry, fp.AlongTrackM)
	}

	triggerSpacingM := fp.AlongTrackM * (1.0 - p.FrontOverlap)

	var waypoints []Waypoint
	for _, leg := range legs {
		waypoints = append(waypoints, legWaypoints(leg, triggerSpacingM, p.AltitudeM)...)
	}

	segments, totalS, err := segmentByBattery(legs, p)
	if err != nil {
		return nil, err
	}

	return &FlightEstimate{
		Waypoints:       waypoints,
		Segments:        segments,
		TotalFlightS:    totalS,
		TotalFlightMin:  totalS / 60.0,
		TriggerSpacingM: triggerSpacingM,
	}, nil
}

// legWaypoints places trigger stations from the leg start at the nominal
// spacing, then a final trigger clamped to the leg end so the last frame
// always covers the far boundary. Every station triggers the camera.
func legWaypoints(leg Leg, spacingM, altitudeM float64) []Waypoint {
	dirX := (leg.End.XM - leg.Start.XM) / leg.LengthM
	dirY := (leg.End.YM - leg.Start.YM) / leg.LengthM

	const endTol = 1e-9

	var wps []Waypoint
	for d := 0.0; d < leg.LengthM-endTol; d += spacingM {
		wps = append(wps, Waypoint{
			XM:            leg.Start.XM + dirX*d,
			YM:            leg.Start.YM + dirY*d,
			AltitudeM:     altitudeM,
			HeadingDeg:    leg.HeadingDeg,
			CameraTrigger: true,
			LegIndex:      leg.Index,
		})
	}
	wps = append(wps, Waypoint{
		XM:            leg.End.XM,
		YM:            leg.End.YM,
		AltitudeM:     altitudeM,
		HeadingDeg:    leg.HeadingDeg,
		CameraTrigger: true,
		LegIndex:      leg.Index,
	})
	return wps
}

// segmentByBattery partitions the legs into battery segments. A segment is
// closed as soon as the next leg (with its inbound turn) would push the
// accumulated time past the budget; boundaries fall only between legs.
func segmentByBattery(legs []Leg, p FlightParams) ([]BatterySegment, float64, error) {
	var (
		segments []BatterySegment
		segStart int
		segTimeS float64
		totalS   float64
	)

	for i, leg := range legs {
		legTimeS := leg.LengthM / p.CruiseSpeedMPS
		if legTimeS > p.BatteryMaxFlightS {
			return nil, 0, fmt.Errorf("%w: leg %d needs %.1f s, battery allows %.1f s",
				ErrLegExceedsBattery, i, legTimeS, p.BatteryMaxFlightS)
		}

		costS := legTimeS
		if i > 0 {
			costS += p.TurnPenaltyS
		}

		if i > segStart && segTimeS+costS > p.BatteryMaxFlightS {
			segments = append(segments, BatterySegment{
				SegmentIndex:   len(segments),
				LegStartIndex:  segStart,
				LegEndIndex:    i - 1,
				SegmentFlightS: segTimeS,
			})
			segStart = i
			segTimeS = 0
		}

		segTimeS += costS
		totalS += costS
	}

	if len(legs) > 0 {
		segments = append(segments, BatterySegment{
			SegmentIndex:   len(segments),
			LegStartIndex:  segStart,
			LegEndIndex:    len(legs) - 1,
			SegmentFlightS: segTimeS,
		})
	}

	return segments, totalS, nil
}
