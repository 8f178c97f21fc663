package planner

// SweepDirection tells which area dimension the legs run parallel to.
type SweepDirection string

const (
	// SweepAlongLength: legs run parallel to length_m (the X axis),
	// spaced along width_m.
	SweepAlongLength SweepDirection = "along_length"
	// SweepAlongWidth: legs run parallel to width_m (the Y axis),
	// spaced along length_m.
	SweepAlongWidth SweepDirection = "along_width"
)

// Point is a ground coordinate in metres. Origin is the south-west corner
// of the survey area, X along length_m, Y along width_m.
type Point struct {
	XM float64 `json:"x_m"`
	YM float64 `json:"y_m"`
}

// Leg is one straight flight pass. Legs are generated in visiting order;
// Index is the 0-based position in that order.
type Leg struct {
	Index      int     `json:"index"`
	Start      Point   `json:"start"`
	End        Point   `json:"end"`
	LengthM    float64 `json:"length_m"`
	HeadingDeg float64 `json:"heading_deg"`
}

// Waypoint is a camera-trigger station along a leg.
type Waypoint struct {
	XM            float64 `json:"x_m"`
	YM            float64 `json:"y_m"`
	AltitudeM     float64 `json:"altitude_m"`
	HeadingDeg    float64 `json:"heading_deg"`
	CameraTrigger bool    `json:"camera_trigger"`
	LegIndex      int     `json:"leg_index"`
}

// BatterySegment is a maximal run of consecutive legs flyable on one
// battery. Segments partition the leg sequence: no gaps, no overlap,
// boundaries only between legs.
type BatterySegment struct {
	SegmentIndex   int     `json:"segment_index"`
	LegStartIndex  int     `json:"leg_start_index"`
	LegEndIndex    int     `json:"leg_end_index"`
	SegmentFlightS float64 `json:"segment_flight_s"`
}

// CoverageSummary holds the scalar results reported alongside the plan.
type CoverageSummary struct {
	SweepDirection     SweepDirection `json:"sweep_direction"`
	SwathWidthM        float64        `json:"swath_width_m"`
	LegSpacingM        float64        `json:"leg_spacing_m"`
	NumLegs            int            `json:"num_legs"`
	LegLengthM         float64        `json:"leg_length_m"`
	TotalPathLengthM   float64        `json:"total_path_length_m"`
	TotalFlightTimeMin float64        `json:"total_flight_time_min"`
	NumBatterySegments int            `json:"num_battery_segments"`
}

// FlightPlan is the sole output of the engine. It is computed fresh from
// the request and never mutated; legs, waypoints, and battery segments are
// in strict flight-visiting order.
type FlightPlan struct {
	CoverageSummary CoverageSummary  `json:"coverage_summary"`
	Legs            []Leg            `json:"legs"`
	Waypoints       []Waypoint       `json:"waypoints"`
	BatterySegments []BatterySegment `json:"battery_segments"`
}
