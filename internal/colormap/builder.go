package colormap

import (
	"strings"
)

// Algorithm names one of the two table constructions.
type Algorithm string

const (
	// Curve fits an interpolant through the anchors.
	Curve Algorithm = "curve"
	// Bezier joins two rational quadratic Bezier segments.
	Bezier Algorithm = "bezier"
)

// Algorithms lists the supported constructions.
var Algorithms = []Algorithm{Curve, Bezier}

const (
	DefaultLUTSize = 256
	DefaultNeutral = 1.0 / 3.0
)

// ParseAlgorithm accepts an algorithm name or the name of the table it
// produces ("bipolar" for curve, "hotcold" for bezier).
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "curve", "bipolar":
		return Curve, nil
	case "bezier", "hotcold":
		return Bezier, nil
	}
	return "", invalidf("unknown algorithm %q", s)
}

// TableName is the name given to tables built by the algorithm.
func (a Algorithm) TableName() string {
	switch a {
	case Curve:
		return "bipolar"
	case Bezier:
		return "hotcold"
	}
	return string(a)
}

// Options describes one table to build.
type Options struct {
	Algorithm Algorithm
	LUTSize   int
	Neutral   float64
	// Mode is used by Curve. The zero Mode picks the anchor set's default.
	Mode Mode
	// Weight is used by Bezier.
	Weight float64
	// Name overrides the algorithm's table name.
	Name string
	// MaxLUTSize caps LUTSize below the package MaxLUTSize when positive.
	MaxLUTSize int
}

// DefaultOptions returns the defaults for an algorithm: 256 entries, a
// neutral gray of 1/3, automatic mode and weight 1.
func DefaultOptions(a Algorithm) Options {
	return Options{
		Algorithm: a,
		LUTSize:   DefaultLUTSize,
		Neutral:   DefaultNeutral,
		Weight:    DefaultWeight,
	}
}

// Generator samples a table's colors from its anchors.
type Generator interface {
	Generate(anchors AnchorSet, defaultMode Mode, opts Options) ([]RGB, error)
}

// CurveGenerator builds tables with a CurveInterpolator.
type CurveGenerator struct {
	Interpolator CurveInterpolator
}

func (g CurveGenerator) Generate(anchors AnchorSet, defaultMode Mode, opts Options) ([]RGB, error) {
	mode := opts.Mode
	if !mode.IsSet() {
		mode = defaultMode
	}
	return g.Interpolator.Sample(anchors, mode, opts.LUTSize)
}

// BezierGenerator builds tables with a BezierBlender.
type BezierGenerator struct {
	Blender BezierBlender
}

func (g BezierGenerator) Generate(anchors AnchorSet, _ Mode, opts Options) ([]RGB, error) {
	return g.Blender.Sample(anchors, opts.Weight, opts.LUTSize)
}

// GeneratorFor returns the default generator of an algorithm.
func GeneratorFor(a Algorithm) (Generator, error) {
	switch a {
	case Curve:
		return CurveGenerator{}, nil
	case Bezier:
		return BezierGenerator{}, nil
	}
	return nil, invalidf("unknown algorithm %q", string(a))
}

// Build validates opts, selects the anchors and samples a new table.
// It either returns a complete table or an error wrapping
// ErrInvalidArgument.
func Build(opts Options) (*Table, error) {
	gen, err := GeneratorFor(opts.Algorithm)
	if err != nil {
		return nil, err
	}
	return BuildWith(gen, opts)
}

// BuildWith is Build with a caller supplied generator.
func BuildWith(gen Generator, opts Options) (*Table, error) {
	if err := checkLUTSize(opts.LUTSize, opts.MaxLUTSize); err != nil {
		return nil, err
	}
	anchors, defaultMode, err := SelectAnchors(opts.Neutral)
	if err != nil {
		return nil, err
	}
	colors, err := gen.Generate(anchors, defaultMode, opts)
	if err != nil {
		return nil, err
	}
	name := opts.Name
	if name == "" {
		name = opts.Algorithm.TableName()
	}
	return NewTable(name, colors)
}

// GenerateCurveTable builds a "bipolar" table by curve interpolation.
// Pass the zero Mode for the automatic choice: linear for dark neutrals,
// cubic for light ones.
func GenerateCurveTable(lutsize int, neutral float64, mode Mode) (*Table, error) {
	opts := DefaultOptions(Curve)
	opts.LUTSize = lutsize
	opts.Neutral = neutral
	opts.Mode = mode
	return Build(opts)
}

// GenerateBezierTable builds a "hotcold" table from Bezier segments.
func GenerateBezierTable(lutsize int, neutral, weight float64) (*Table, error) {
	opts := DefaultOptions(Bezier)
	opts.LUTSize = lutsize
	opts.Neutral = neutral
	opts.Weight = weight
	return Build(opts)
}
