// Package colormap generates diverging ("hot/cold") color lookup tables
// with a neutral gray in the middle.
//
// Two constructions share the same five anchor colors: a curve fitted
// through the anchors per channel (Bipolar) and a pair of rational
// quadratic Bezier segments meeting at the neutral color (HotCold).
package colormap

import (
	"math"

	"github.com/spectriclabs/hotcold/internal/numerical"
)

// RGB is a color with channels in [0,1].
type RGB struct {
	R, G, B float64
}

// RGBA implements image/color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return uint32(numerical.Clamp01(c.R)*0xffff + 0.5),
		uint32(numerical.Clamp01(c.G)*0xffff + 0.5),
		uint32(numerical.Clamp01(c.B)*0xffff + 0.5),
		0xffff
}

func (c RGB) clamped() RGB {
	return RGB{numerical.Clamp01(c.R), numerical.Clamp01(c.G), numerical.Clamp01(c.B)}
}

var (
	Cyan   = RGB{0, 1, 1}
	Blue   = RGB{0, 0, 1}
	Red    = RGB{1, 0, 0}
	Yellow = RGB{1, 1, 0}
)

// NumAnchors is the number of control colors of every table.
const NumAnchors = 5

// AnchorSet holds the control colors from the cold end to the hot end.
// The middle entry is always the neutral gray.
type AnchorSet [NumAnchors]RGB

// Neutral returns the gray the table passes through.
func (a AnchorSet) Neutral() RGB {
	return a[NumAnchors/2]
}

// channel returns one channel of all anchors: 0 red, 1 green, 2 blue.
func (a AnchorSet) channel(ch int) []float64 {
	out := make([]float64, NumAnchors)
	for i, c := range a {
		out[i] = c.channel(ch)
	}
	return out
}

func (c RGB) channel(ch int) float64 {
	switch ch {
	case 0:
		return c.R
	case 1:
		return c.G
	default:
		return c.B
	}
}

// SelectAnchors picks the anchor colors and default interpolation mode
// for a neutral gray level.
//
// A dark neutral (below 0.5) runs cyan, blue, gray, red, yellow and
// defaults to linear interpolation. A light neutral (0.5 and above) swaps
// the outer pairs to blue, cyan, gray, yellow, red and defaults to cubic,
// which avoids bright rings around the neutral band.
func SelectAnchors(neutral float64) (AnchorSet, Mode, error) {
	if math.IsNaN(neutral) || neutral < 0 || neutral > 1 {
		return AnchorSet{}, Mode{}, invalidf("neutral %v must be within [0, 1]", neutral)
	}
	gray := RGB{neutral, neutral, neutral}
	if neutral < 0.5 {
		return AnchorSet{Cyan, Blue, gray, Red, Yellow}, Linear, nil
	}
	return AnchorSet{Blue, Cyan, gray, Yellow, Red}, Cubic, nil
}

func (c *RGB) setChannel(ch int, v float64) {
	switch ch {
	case 0:
		c.R = v
	case 1:
		c.G = v
	default:
		c.B = v
	}
}
