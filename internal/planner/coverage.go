package planner

import (
	"fmt"
	"math"
)

// Tiling is the result of the lawnmower pass layout: the ordered legs plus
// the geometry scalars the flight estimator and the summary need.
type Tiling struct {
	Sweep            SweepDirection
	SwathWidthM      float64
	LegSpacingM      float64
	LegLengthM       float64
	SpanM            float64
	Legs             []Leg
	TotalPathLengthM float64
}

// legsForSpan returns the leg count needed to tile a span at the given
// spacing: first leg on the near edge, then one per spacing step, plus a
// final leg clamped to the far edge. A spacing at least as wide as the span
// needs a single leg.
func legsForSpan(spanM, spacingM float64) int {
	if spacingM >= spanM {
		return 1
	}
	return int(math.Ceil(spanM/spacingM)) + 1
}

// TileArea lays out the boustrophedon legs covering a widthM × lengthM
// rectangle with swaths of fp.CrossTrackM, spaced for the requested side
// overlap. If override is empty, the sweep direction with fewer legs wins;
// ties go to the longer area dimension (fewer, longer legs, fewer turns).
func TileArea(widthM, lengthM float64, fp Footprint, sideOverlap float64, override SweepDirection) (*Tiling, error) {
	if math.IsNaN(widthM) || widthM <= 0 || math.IsNaN(lengthM) || lengthM <= 0 {
		return nil, fmt.Errorf("%w: area dimensions must be > 0, got %g x %g", ErrInvalidGeometry, widthM, lengthM)
	}
	if fp.CrossTrackM <= 0 {
		return nil, fmt.Errorf("%w: cross-track footprint must be > 0, got %g", ErrInvalidGeometry, fp.CrossTrackM)
	}
	if math.IsNaN(sideOverlap) || sideOverlap < 0 || sideOverlap >= 1 {
		return nil, fmt.Errorf("%w: side_overlap must be in [0, 1), got %g", ErrInvalidParameters, sideOverlap)
	}

	swathM := fp.CrossTrackM
	spacingM := swathM * (1.0 - sideOverlap)

	// Sweep along length: legs parallel to lengthM, spacing tiles widthM.
	// Sweep along width: the other way around.
	sweep := override
	switch sweep {
	case SweepAlongLength, SweepAlongWidth:
		// caller pinned the direction
	case "":
		legsAlongLength := legsForSpan(widthM, spacingM)
		legsAlongWidth := legsForSpan(lengthM, spacingM)
		switch {
		case legsAlongLength < legsAlongWidth:
			sweep = SweepAlongLength
		case legsAlongWidth < legsAlongLength:
			sweep = SweepAlongWidth
		case lengthM >= widthM:
			sweep = SweepAlongLength
		default:
			sweep = SweepAlongWidth
		}
	default:
		return nil, fmt.Errorf("%w: unknown sweep direction %q", ErrInvalidParameters, sweep)
	}

	var legLengthM, spanM float64
	if sweep == SweepAlongLength {
		legLengthM, spanM = lengthM, widthM
	} else {
		legLengthM, spanM = widthM, lengthM
	}

	numLegs := legsForSpan(spanM, spacingM)
	legs := make([]Leg, 0, numLegs)
	for i := 0; i < numLegs; i++ {
		// Offsets step by the spacing; the last leg is clamped to the far
		// edge so coverage never falls short when the spacing does not
		// divide the span evenly.
		offset := math.Min(float64(i)*spacingM, spanM)
		legs = append(legs, makeLeg(i, sweep, offset, legLengthM))
	}

	return &Tiling{
		Sweep:            sweep,
		SwathWidthM:      swathM,
		LegSpacingM:      spacingM,
		LegLengthM:       legLengthM,
		SpanM:            spanM,
		Legs:             legs,
		TotalPathLengthM: float64(numLegs)*legLengthM + float64(numLegs-1)*spacingM,
	}, nil
}

// makeLeg builds leg i at the given cross-track offset. Even-indexed legs
// fly in the positive axis direction, odd-indexed legs fly back, so
// headings alternate by exactly 180°.
func makeLeg(i int, sweep SweepDirection, offsetM, legLengthM float64) Leg {
	forward := i%2 == 0

	var start, end Point
	var headingDeg float64
	if sweep == SweepAlongLength {
		// Legs run along X; offset is the Y coordinate.
		if forward {
			start, end = Point{0, offsetM}, Point{legLengthM, offsetM}
			headingDeg = 90
		} else {
			start, end = Point{legLengthM, offsetM}, Point{0, offsetM}
			headingDeg = 270
		}
	} else {
		// Legs run along Y; offset is the X coordinate.
		if forward {
			start, end = Point{offsetM, 0}, Point{offsetM, legLengthM}
			headingDeg = 0
		} else {
			start, end = Point{offsetM, legLengthM}, Point{offsetM, 0}
			headingDeg = 180
		}
	}

	return Leg{
		Index:      i,
		Start:      start,
		End:        end,
		LengthM:    legLengthM,
		HeadingDeg: headingDeg,
	}
}
