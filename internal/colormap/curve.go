package colormap

import (
	"github.com/pkg/errors"

	"github.com/spectriclabs/hotcold/internal/numerical"
)

const (
	// MinLUTSize is the smallest table that reaches both ends of the ramp.
	MinLUTSize = 2
	// MaxLUTSize bounds table allocation for untrusted sizes.
	MaxLUTSize = 1 << 20
)

func checkLUTSize(lutsize, max int) error {
	if max <= 0 || max > MaxLUTSize {
		max = MaxLUTSize
	}
	if lutsize < MinLUTSize || lutsize > max {
		return invalidf("lutsize %d must be within [%d, %d]", lutsize, MinLUTSize, max)
	}
	return nil
}

// CurveInterpolator fits one interpolant per channel through the anchors,
// spread evenly over [0,1], and samples it.
type CurveInterpolator struct {
	// NewPredictor builds the per-channel interpolant. Nil means
	// DefaultPredictor.
	NewPredictor PredictorFactory
}

// Sample evaluates the fitted curve at lutsize evenly spaced positions,
// both ends included. Higher order modes overshoot the anchors between
// control points, so every channel is clamped into [0,1].
func (ci CurveInterpolator) Sample(anchors AnchorSet, mode Mode, lutsize int) ([]RGB, error) {
	if err := checkLUTSize(lutsize, MaxLUTSize); err != nil {
		return nil, err
	}
	newPredictor := ci.NewPredictor
	if newPredictor == nil {
		newPredictor = DefaultPredictor
	}

	sites := numerical.Linspace(0, 1, NumAnchors)
	positions := numerical.Linspace(0, 1, lutsize)
	out := make([]RGB, lutsize)
	for ch := 0; ch < 3; ch++ {
		p, err := newPredictor(mode)
		if err != nil {
			return nil, err
		}
		if err := p.Fit(sites, anchors.channel(ch)); err != nil {
			return nil, errors.Wrapf(err, "fitting %s interpolant", mode)
		}
		for i, x := range positions {
			out[i].setChannel(ch, numerical.Clamp01(p.Predict(x)))
		}
	}
	return out, nil
}
