package colormap

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/spectriclabs/hotcold/internal/numerical"
)

// Table is a named, immutable color lookup table.
type Table struct {
	name   string
	colors []RGB
}

// NewTable copies colors into a table, clamping every channel into [0,1].
func NewTable(name string, colors []RGB) (*Table, error) {
	if len(colors) < MinLUTSize {
		return nil, invalidf("table %q needs at least %d colors, got %d", name, MinLUTSize, len(colors))
	}
	t := &Table{name: name, colors: make([]RGB, len(colors))}
	for i, c := range colors {
		t.colors[i] = c.clamped()
	}
	return t, nil
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Len() int {
	return len(t.colors)
}

// At returns entry i. It panics if i is out of range, like a slice index.
func (t *Table) At(i int) RGB {
	return t.colors[i]
}

// Colors returns a copy of the entries.
func (t *Table) Colors() []RGB {
	return append([]RGB(nil), t.colors...)
}

// Index returns the entry nearest to x, with x clamped to [0,1].
func (t *Table) Index(x float64) int {
	return int(math.Round(numerical.Clamp01(x) * float64(len(t.colors)-1)))
}

// Lookup maps x in [0,1] to a color by linear interpolation between
// adjacent entries.
func (t *Table) Lookup(x float64) RGB {
	return lerpStops(t.colors, x)
}

// Palette converts the table for use with image/draw and friends.
func (t *Table) Palette() color.Palette {
	p := make(color.Palette, len(t.colors))
	for i, c := range t.colors {
		p[i] = c
	}
	return p
}

// Colorful converts the entries to go-colorful colors.
func (t *Table) Colorful() []colorful.Color {
	out := make([]colorful.Color, len(t.colors))
	for i, c := range t.colors {
		out[i] = colorful.Color{R: c.R, G: c.G, B: c.B}
	}
	return out
}

// Hex returns the entries as "#rrggbb" strings.
func (t *Table) Hex() []string {
	out := make([]string, len(t.colors))
	for i, c := range t.Colorful() {
		out[i] = c.Hex()
	}
	return out
}
