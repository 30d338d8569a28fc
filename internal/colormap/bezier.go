package colormap

import (
	"math"

	"github.com/spectriclabs/hotcold/internal/numerical"
)

// DefaultWeight gives plain quadratic Bezier segments.
const DefaultWeight = 1.0

// BezierBlender builds the table from two rational quadratic Bezier
// segments that start at the neutral color, bend toward the inner anchor
// and end at the outer anchor. A weight above 1 pulls the curve toward
// the inner anchor, below 1 flattens it toward the chord.
type BezierBlender struct{}

// Sample returns exactly lutsize colors.
//
// Each segment is sampled at max(lutsize/2, 2) points. The cold segment
// is reversed without its neutral sample and joined to the hot segment,
// giving 2*max(lutsize/2, 2)-1 stops spread evenly over [0,1]. Those
// stops are resampled linearly to lutsize entries, so for odd sizes the
// neutral color lands exactly on the middle entry.
func (BezierBlender) Sample(anchors AnchorSet, weight float64, lutsize int) ([]RGB, error) {
	if err := checkLUTSize(lutsize, MaxLUTSize); err != nil {
		return nil, err
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return nil, invalidf("weight %v must be a positive number", weight)
	}

	half := lutsize / 2
	if half < 2 {
		half = 2
	}
	ts := numerical.Linspace(0, 1, half)
	cold := bezierSegment(anchors[2], anchors[1], anchors[0], weight, ts)
	hot := bezierSegment(anchors[2], anchors[3], anchors[4], weight, ts)

	stops := make([]RGB, 0, 2*half-1)
	for i := len(cold) - 1; i >= 1; i-- {
		stops = append(stops, cold[i])
	}
	stops = append(stops, hot...)

	return resample(stops, lutsize), nil
}

func bezierSegment(p0, p1, p2 RGB, w float64, ts []float64) []RGB {
	out := make([]RGB, len(ts))
	for i, t := range ts {
		a := (1 - t) * (1 - t)
		b := 2 * (1 - t) * t * w
		c := t * t
		denom := a + b + c
		out[i] = RGB{
			R: (a*p0.R + b*p1.R + c*p2.R) / denom,
			G: (a*p0.G + b*p1.G + c*p2.G) / denom,
			B: (a*p0.B + b*p1.B + c*p2.B) / denom,
		}.clamped()
	}
	return out
}

// resample treats stops as evenly spaced over [0,1] and samples n colors
// by linear interpolation, keeping both end colors exact.
func resample(stops []RGB, n int) []RGB {
	out := make([]RGB, n)
	for i := range out {
		out[i] = lerpStops(stops, float64(i)/float64(n-1))
	}
	return out
}

func lerpStops(stops []RGB, x float64) RGB {
	index, frac := numerical.SeriesPosition(len(stops), x)
	if frac == 0 {
		return stops[index]
	}
	lo, hi := stops[index], stops[index+1]
	return RGB{
		R: numerical.Lerp(lo.R, hi.R, frac),
		G: numerical.Lerp(lo.G, hi.G, frac),
		B: numerical.Lerp(lo.B, hi.B, frac),
	}.clamped()
}
