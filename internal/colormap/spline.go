package colormap

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// BSpline is an interpolating B-spline of a fixed order.
//
// Knots follow the not-a-knot rule: for odd orders the interior knots are
// the data sites with (k+1)/2 dropped at each end; for even orders they
// are the midpoints between sites with k/2 dropped at each end. Order 0
// is a step function holding each value until the next site.
type BSpline struct {
	Order int

	knots []float64
	coefs []float64
}

// Fit solves for the spline coefficients passing through (xs, ys).
// xs must be strictly increasing and contain more points than Order.
func (s *BSpline) Fit(xs, ys []float64) error {
	n := len(xs)
	if len(ys) != n {
		return invalidf("bspline: %d sites but %d values", n, len(ys))
	}
	if s.Order < 0 || s.Order >= n {
		return invalidf("bspline: order %d needs more than %d points, have %d", s.Order, s.Order, n)
	}
	for i := 1; i < n; i++ {
		if xs[i] <= xs[i-1] {
			return invalidf("bspline: sites must be strictly increasing")
		}
	}

	s.knots = notAKnot(xs, s.Order)
	if s.Order == 0 {
		s.coefs = append([]float64(nil), ys...)
		return nil
	}

	// Collocation: row i holds the basis functions evaluated at xs[i].
	a := mat.NewDense(n, n, nil)
	for i, x := range xs {
		l := s.span(x, n)
		for j, b := range basisFuncs(s.knots, s.Order, l, x) {
			a.Set(i, l-s.Order+j, b)
		}
	}
	var c mat.VecDense
	if err := c.SolveVec(a, mat.NewVecDense(n, append([]float64(nil), ys...))); err != nil {
		return errors.Wrapf(err, "bspline: solving order %d collocation", s.Order)
	}
	s.coefs = make([]float64, n)
	for i := range s.coefs {
		s.coefs[i] = c.AtVec(i)
	}
	return nil
}

// Predict evaluates the fitted spline at x. Outside the data range the
// end pieces are extended.
func (s *BSpline) Predict(x float64) float64 {
	n := len(s.coefs)
	l := s.span(x, n)
	var sum float64
	for j, b := range basisFuncs(s.knots, s.Order, l, x) {
		sum += s.coefs[l-s.Order+j] * b
	}
	return sum
}

// span returns l in [k, n-1] with knots[l] <= x < knots[l+1]. The right
// end of the domain belongs to the last piece.
func (s *BSpline) span(x float64, n int) int {
	l := s.Order
	for l < n-1 && x >= s.knots[l+1] {
		l++
	}
	return l
}

func notAKnot(xs []float64, k int) []float64 {
	n := len(xs)
	var interior []float64
	switch {
	case k == 0:
		interior = xs[1:]
	case k%2 == 1:
		k2 := (k + 1) / 2
		interior = xs[k2 : n-k2]
	default:
		k2 := k / 2
		for i := k2; i < n-1-k2; i++ {
			interior = append(interior, (xs[i]+xs[i+1])/2)
		}
	}

	knots := make([]float64, 0, n+k+1)
	if k == 0 {
		knots = append(knots, xs[0])
		knots = append(knots, interior...)
		return append(knots, xs[n-1])
	}
	for i := 0; i <= k; i++ {
		knots = append(knots, xs[0])
	}
	knots = append(knots, interior...)
	for i := 0; i <= k; i++ {
		knots = append(knots, xs[n-1])
	}
	return knots
}

// basisFuncs returns the k+1 non-zero basis functions N[l-k..l] at x
// (Cox-de Boor recurrence).
func basisFuncs(knots []float64, k, l int, x float64) []float64 {
	b := make([]float64, k+1)
	left := make([]float64, k+1)
	right := make([]float64, k+1)
	b[0] = 1
	for j := 1; j <= k; j++ {
		left[j] = x - knots[l+1-j]
		right[j] = knots[l+j] - x
		var saved float64
		for r := 0; r < j; r++ {
			temp := b[r] / (right[r+1] + left[j-r])
			b[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		b[j] = saved
	}
	return b
}

// NearestPredictor returns the value at the closest site. A point exactly
// halfway between two sites takes the lower one.
type NearestPredictor struct {
	xs []float64
	ys []float64
}

func (np *NearestPredictor) Fit(xs, ys []float64) error {
	if len(xs) == 0 || len(xs) != len(ys) {
		return invalidf("nearest: %d sites and %d values", len(xs), len(ys))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return invalidf("nearest: sites must be strictly increasing")
		}
	}
	np.xs = append([]float64(nil), xs...)
	np.ys = append([]float64(nil), ys...)
	return nil
}

func (np *NearestPredictor) Predict(x float64) float64 {
	for i := 0; i < len(np.xs)-1; i++ {
		if x <= (np.xs[i]+np.xs[i+1])/2 {
			return np.ys[i]
		}
	}
	return np.ys[len(np.ys)-1]
}
