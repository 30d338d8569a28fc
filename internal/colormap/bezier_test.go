package colormap_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectriclabs/hotcold/internal/colormap"
)

func TestBezierEndpoints(t *testing.T) {
	table, err := colormap.GenerateBezierTable(256, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 256, table.Len())
	assertRGBInDelta(t, colormap.Cyan, table.At(0), 1e-12)
	assertRGBInDelta(t, colormap.Yellow, table.At(255), 1e-12)

	table, err = colormap.GenerateBezierTable(256, 0.8, 1)
	require.NoError(t, err)
	assertRGBInDelta(t, colormap.Blue, table.At(0), 1e-12)
	assertRGBInDelta(t, colormap.Red, table.At(255), 1e-12)
}

func TestBezierLengthAndRange(t *testing.T) {
	for _, lutsize := range []int{2, 3, 4, 5, 7, 64, 255, 256, 1024} {
		for _, neutral := range []float64{0, 0.25, 0.5, 0.75, 1} {
			for _, weight := range []float64{0.1, 1, 3, 50} {
				anchors, _, err := colormap.SelectAnchors(neutral)
				require.NoError(t, err)
				colors, err := colormap.BezierBlender{}.Sample(anchors, weight, lutsize)
				require.NoError(t, err)
				require.Len(t, colors, lutsize)
				assertInUnitCube(t, colors)
			}
		}
	}
}

func TestBezierMiddleIsNeutral(t *testing.T) {
	for _, neutral := range []float64{0, 0.1, 1.0 / 3, 0.5, 0.66, 0.9, 1} {
		n := colormap.RGB{R: neutral, G: neutral, B: neutral}

		table, err := colormap.GenerateBezierTable(255, neutral, 1)
		require.NoError(t, err)
		assertRGBInDelta(t, n, table.At(127), 1e-12, "neutral=%v", neutral)

		table, err = colormap.GenerateBezierTable(256, neutral, 1)
		require.NoError(t, err)
		assertRGBInDelta(t, n, table.At(127), 0.02, "neutral=%v", neutral)
		assertRGBInDelta(t, n, table.At(128), 0.02, "neutral=%v", neutral)
	}
}

// rationalBezier evaluates one channel of a rational quadratic Bezier.
func rationalBezier(p0, p1, p2, w, t float64) float64 {
	a := (1 - t) * (1 - t)
	b := 2 * (1 - t) * t * w
	c := t * t
	return (a*p0 + b*p1 + c*p2) / (a + b + c)
}

func TestBezierSmallTable(t *testing.T) {
	// Seven entries resample five stops: cyan, the cold midpoint, the
	// neutral, the hot midpoint and yellow.
	const neutral, weight = 0.333, 2.0
	table, err := colormap.GenerateBezierTable(7, neutral, weight)
	require.NoError(t, err)
	require.Equal(t, 7, table.Len())

	coldMid := colormap.RGB{
		R: rationalBezier(neutral, 0, 0, weight, 0.5),
		G: rationalBezier(neutral, 0, 1, weight, 0.5),
		B: rationalBezier(neutral, 1, 1, weight, 0.5),
	}
	frac := 2.0 / 3.0
	expected := colormap.RGB{
		R: colormap.Cyan.R + (coldMid.R-colormap.Cyan.R)*frac,
		G: colormap.Cyan.G + (coldMid.G-colormap.Cyan.G)*frac,
		B: colormap.Cyan.B + (coldMid.B-colormap.Cyan.B)*frac,
	}
	assertRGBInDelta(t, expected, table.At(1), 1e-12)
	assertRGBInDelta(t, colormap.RGB{R: neutral, G: neutral, B: neutral}, table.At(3), 1e-12)
}

func TestBezierWeightPullsTowardInnerAnchor(t *testing.T) {
	var previous float64
	for i, weight := range []float64{0.25, 1, 4} {
		table, err := colormap.GenerateBezierTable(7, 0, weight)
		require.NoError(t, err)
		blue := table.At(1).B
		if i > 0 {
			assert.Greater(t, blue, previous, "weight=%v", weight)
		}
		previous = blue
	}

	table, err := colormap.GenerateBezierTable(7, 0, 1e9)
	require.NoError(t, err)
	assertRGBInDelta(t, colormap.RGB{R: 0, G: 1.0 / 3, B: 1}, table.At(1), 1e-6)
}

func TestBezierRejects(t *testing.T) {
	anchors, _, err := colormap.SelectAnchors(0.3)
	require.NoError(t, err)
	expected := []struct {
		Weight  float64
		LUTSize int
	}{
		{Weight: 1, LUTSize: 1},
		{Weight: 1, LUTSize: colormap.MaxLUTSize + 1},
		{Weight: 0, LUTSize: 16},
		{Weight: -1, LUTSize: 16},
		{Weight: math.NaN(), LUTSize: 16},
		{Weight: math.Inf(1), LUTSize: 16},
	}
	for _, exp := range expected {
		colors, err := colormap.BezierBlender{}.Sample(anchors, exp.Weight, exp.LUTSize)
		assert.Nil(t, colors)
		assert.True(t, errors.Is(err, colormap.ErrInvalidArgument), "weight=%v lutsize=%d err=%v", exp.Weight, exp.LUTSize, err)
	}
}
