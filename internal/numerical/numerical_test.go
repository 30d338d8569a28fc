package numerical_test

import (
	"math"
	"testing"

	"github.com/spectriclabs/hotcold/internal/numerical"
	"github.com/stretchr/testify/assert"
)

func TestSuppressNaN(t *testing.T) {
	expected := []struct {
		Input  float64
		Output float64
	}{
		{Input: 0.0, Output: 0.0},
		{Input: 13000000.5, Output: 13000000.5},
		{Input: math.NaN(), Output: 0},
		{Input: math.Inf(1), Output: math.Inf(1)},
	}

	for _, exp := range expected {
		result := numerical.SuppressNaN(exp.Input)
		if result != exp.Output {
			t.Errorf(
				"SuppressNaN(%f) returned %f instead of %f",
				exp.Input,
				result,
				exp.Output,
			)
		}
	}
}

func TestClamp01(t *testing.T) {
	expected := []struct {
		Input  float64
		Output float64
	}{
		{Input: -0.2, Output: 0},
		{Input: 0.25, Output: 0.25},
		{Input: 1.0000001, Output: 1},
		{Input: math.NaN(), Output: 0},
		{Input: math.Inf(-1), Output: 0},
		{Input: math.Inf(1), Output: 1},
	}

	for _, exp := range expected {
		result := numerical.Clamp01(exp.Input)
		if result != exp.Output {
			t.Errorf(
				"Clamp01(%f) returned %f instead of %f",
				exp.Input,
				result,
				exp.Output,
			)
		}
	}
}

func TestLinspace(t *testing.T) {
	assert.Nil(t, numerical.Linspace(0, 1, 0))
	assert.Equal(t, []float64{0}, numerical.Linspace(0, 1, 1))
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, numerical.Linspace(0, 1, 5))

	xs := numerical.Linspace(0, 1, 256)
	assert.Len(t, xs, 256)
	assert.Equal(t, 0.0, xs[0])
	assert.Equal(t, 1.0, xs[255])
}

func TestSeriesPosition(t *testing.T) {
	index, frac := numerical.SeriesPosition(5, 1)
	assert.Equal(t, 4, index)
	assert.Equal(t, 0.0, frac)

	index, frac = numerical.SeriesPosition(5, 0.6)
	assert.Equal(t, 2, index)
	assert.InDelta(t, 0.4, frac, 1e-12)
}
