package planner

import (
	"fmt"
	"math"
)

// Footprint is the ground extent visible in a single image at the flight
// altitude. CrossTrackM is perpendicular to the flight direction (the swath
// width); AlongTrackM is parallel to it (governs camera-trigger spacing).
type Footprint struct {
	CrossTrackM float64
	AlongTrackM float64
}

// footprintExtent converts one FOV angle and the altitude into a ground
// extent. Formula: extent = 2 × h × tan(FOV/2).
func footprintExtent(fovDeg, altitudeM float64) float64 {
	fovRad := fovDeg * math.Pi / 180.0
	return 2.0 * altitudeM * math.Tan(fovRad/2.0)
}

// ResolveFootprint computes the ground footprint from the camera's field of
// view and the cruise altitude. Horizontal FOV maps to the cross-track
// extent, vertical FOV to the along-track extent.
func ResolveFootprint(horizontalFOVDeg, verticalFOVDeg, altitudeM float64) (Footprint, error) {
	if math.IsNaN(altitudeM) || altitudeM <= 0 {
		return Footprint{}, fmt.Errorf("%w: altitude_m must be > 0, got %g", ErrInvalidGeometry, altitudeM)
	}
	if math.IsNaN(horizontalFOVDeg) || horizontalFOVDeg <= 0 || horizontalFOVDeg >= 180 {
		return Footprint{}, fmt.Errorf("%w: horizontal_fov_deg must be in (0, 180), got %g", ErrInvalidGeometry, horizontalFOVDeg)
	}
	if math.IsNaN(verticalFOVDeg) || verticalFOVDeg <= 0 || verticalFOVDeg >= 180 {
		return Footprint{}, fmt.Errorf("%w: vertical_fov_deg must be in (0, 180), got %g", ErrInvalidGeometry, verticalFOVDeg)
	}

	return Footprint{
		CrossTrackM: footprintExtent(horizontalFOVDeg, altitudeM),
		AlongTrackM: footprintExtent(verticalFOVDeg, altitudeM),
	}, nil
}
