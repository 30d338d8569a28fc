// Package numerical holds the small numeric helpers shared by the color
// table generators and the renderers.
package numerical

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

func SuppressNaN(num float64) float64 {
	if math.IsNaN(num) {
		return 0
	}
	return num
}

// Clamp limits num to [lo, hi]. NaN is treated as 0 before clamping.
func Clamp(num, lo, hi float64) float64 {
	return math.Min(math.Max(SuppressNaN(num), lo), hi)
}

// Clamp01 limits num to the unit interval.
func Clamp01(num float64) float64 {
	return Clamp(num, 0, 1)
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
// The first and last values are exactly lo and hi.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	xs := floats.Span(make([]float64, n), lo, hi)
	xs[n-1] = hi
	return xs
}

// Lerp blends a and b by frac.
func Lerp(a, b, frac float64) float64 {
	return a + (b-a)*frac
}

// SeriesPosition locates x within a series of n points spread evenly over
// [0,1]. It returns the index of the point at or below x and the fraction
// of the way to the next point. The last point is returned with frac 0.
func SeriesPosition(n int, x float64) (int, float64) {
	x = Clamp01(x)
	scaled := x * float64(n-1)
	index := int(math.Floor(scaled))
	if index >= n-1 {
		return n - 1, 0
	}
	return index, scaled - float64(index)
}
