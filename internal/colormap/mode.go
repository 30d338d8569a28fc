package colormap

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/interp"
)

// Mode selects how CurveInterpolator fits the anchors. The zero Mode means
// "unspecified": the builder substitutes the anchor set's default.
type Mode struct {
	name  string
	order int
	set   bool
}

var (
	Nearest   = Mode{name: "nearest", order: -1, set: true}
	Zero      = Mode{name: "zero", order: 0, set: true}
	Linear    = Mode{name: "linear", order: 1, set: true}
	SLinear   = Mode{name: "slinear", order: 1, set: true}
	Quadratic = Mode{name: "quadratic", order: 2, set: true}
	Cubic     = Mode{name: "cubic", order: 3, set: true}
)

// Modes lists the named interpolation modes.
var Modes = []Mode{Nearest, Zero, Linear, SLinear, Quadratic, Cubic}

// Order returns the mode for an interpolating spline of order k.
// Orders must be non-negative and below the number of anchors.
func Order(k int) Mode {
	return Mode{order: k, set: true}
}

// ParseMode parses a mode name or a spline order such as "3".
// An empty string yields the unspecified Mode.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Mode{}, nil
	}
	for _, m := range Modes {
		if m.name == s {
			return m, nil
		}
	}
	k, err := strconv.Atoi(s)
	if err != nil {
		return Mode{}, invalidf("unknown interpolation mode %q", s)
	}
	if k < 0 || k >= NumAnchors {
		return Mode{}, invalidf("spline order %d must be within [0, %d]", k, NumAnchors-1)
	}
	return Order(k), nil
}

// IsSet reports whether the mode was chosen explicitly.
func (m Mode) IsSet() bool {
	return m.set
}

// SplineOrder returns the polynomial order of the mode's pieces, -1 for
// nearest.
func (m Mode) SplineOrder() int {
	return m.order
}

func (m Mode) String() string {
	switch {
	case !m.set:
		return "auto"
	case m.name != "":
		return m.name
	default:
		return strconv.Itoa(m.order)
	}
}

// MarshalText encodes the mode by name, so modes round trip through JSON
// and configuration files.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	s := string(text)
	if strings.EqualFold(s, "auto") {
		s = ""
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// PredictorFactory builds an unfitted one-dimensional interpolator for a
// mode. CurveInterpolator fits one per color channel, so any
// implementation of gonum's interp.FittablePredictor can be plugged in.
type PredictorFactory func(m Mode) (interp.FittablePredictor, error)

// DefaultPredictor maps linear and cubic onto gonum's interpolators and
// the remaining modes onto interpolating B-splines.
func DefaultPredictor(m Mode) (interp.FittablePredictor, error) {
	if !m.set {
		return nil, invalidf("interpolation mode not specified")
	}
	switch m.name {
	case "nearest":
		return &NearestPredictor{}, nil
	case "linear", "slinear":
		return &interp.PiecewiseLinear{}, nil
	case "cubic":
		return &interp.NotAKnotCubic{}, nil
	}
	if m.order < 0 {
		return nil, invalidf("spline order %d must not be negative", m.order)
	}
	return &BSpline{Order: m.order}, nil
}
