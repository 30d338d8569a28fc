// Package render encodes color tables for consumers: raw RGBA bytes,
// scalar data mapped through a table, PNG swatches, JSON and hex lists.
package render

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/spectriclabs/hotcold/internal/colormap"
	"github.com/spectriclabs/hotcold/internal/numerical"
)

// Format is an output encoding.
type Format string

const (
	JSON Format = "json"
	RGBA Format = "rgba"
	PNG  Format = "png"
	Hex  Format = "hex"
)

// Formats lists the supported encodings.
var Formats = []Format{JSON, RGBA, PNG, Hex}

// ErrUnknownFormat is returned by ParseFormat for unsupported encodings.
var ErrUnknownFormat = errors.New("render: unknown format")

// ParseFormat parses a format name. An empty string means JSON.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return JSON, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// ContentType is the MIME type of the encoding.
func (f Format) ContentType() string {
	switch f {
	case RGBA:
		return "application/octet-stream"
	case PNG:
		return "image/png"
	default:
		return "application/json"
	}
}

// Channel converts a channel in [0,1] to a byte.
func Channel(v float64) byte {
	return byte(math.Round(numerical.Clamp01(v) * 255))
}

// TableRGBA writes every entry as four bytes, red, green, blue and an
// opaque alpha.
func TableRGBA(table *colormap.Table) []byte {
	dataOut := new(bytes.Buffer)
	dataOut.Grow(4 * table.Len())
	for i := 0; i < table.Len(); i++ {
		writePixel(dataOut, table.At(i))
	}
	return dataOut.Bytes()
}

func writePixel(dataOut *bytes.Buffer, c colormap.RGB) {
	dataOut.WriteByte(Channel(c.R))
	dataOut.WriteByte(Channel(c.G))
	dataOut.WriteByte(Channel(c.B))
	dataOut.WriteByte(255)
}

// MapData maps each value onto the nearest table entry, with zmin at the
// first entry and zmax at the last, and returns RGBA bytes. When zmin
// equals zmax everything maps to the first entry. NaN maps to the first
// entry as well.
func MapData(table *colormap.Table, dataIn []float64, zmin, zmax float64) []byte {
	dataOut := new(bytes.Buffer)
	dataOut.Grow(4 * len(dataIn))
	if zmax == zmin {
		for range dataIn {
			writePixel(dataOut, table.At(0))
		}
		return dataOut.Bytes()
	}
	span := zmax - zmin
	for _, v := range dataIn {
		colorIndex := table.Index(numerical.SuppressNaN((v - zmin) / span))
		writePixel(dataOut, table.At(colorIndex))
	}
	return dataOut.Bytes()
}

// Swatch draws the table as a width x height image with the first entry
// at the bottom row and the last at the top. Tables that fit a palette
// give a paletted image, larger ones a full color image.
func Swatch(table *colormap.Table, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("render: swatch size %dx%d must be positive", width, height)
	}
	rect := image.Rect(0, 0, width, height)
	if table.Len() <= 256 {
		img := image.NewPaletted(rect, table.Palette())
		for y := 0; y < height; y++ {
			index := uint8(table.Index(rowPosition(y, height)))
			for x := 0; x < width; x++ {
				img.SetColorIndex(x, y, index)
			}
		}
		return img, nil
	}
	img := image.NewRGBA(rect)
	for y := 0; y < height; y++ {
		c := table.At(table.Index(rowPosition(y, height)))
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img, nil
}

func rowPosition(y, height int) float64 {
	if height == 1 {
		return 0
	}
	return float64(height-1-y) / float64(height-1)
}

// WritePNG encodes a swatch of the table as PNG.
func WritePNG(w io.Writer, table *colormap.Table, width, height int) error {
	img, err := Swatch(table, width, height)
	if err != nil {
		return err
	}
	return errors.Wrap(png.Encode(w, img), "render: encoding png")
}

// TableJSON is the JSON view of a table.
type TableJSON struct {
	Name    string       `json:"name"`
	LUTSize int          `json:"lutsize"`
	Colors  [][3]float64 `json:"colors"`
}

// NewTableJSON builds the JSON view of a table.
func NewTableJSON(table *colormap.Table) TableJSON {
	out := TableJSON{
		Name:    table.Name(),
		LUTSize: table.Len(),
		Colors:  make([][3]float64, table.Len()),
	}
	for i := range out.Colors {
		c := table.At(i)
		out.Colors[i] = [3]float64{c.R, c.G, c.B}
	}
	return out
}

// HexJSON is the hex list view of a table.
type HexJSON struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// Encode writes the table in format f. width and height size PNG swatches.
func Encode(w io.Writer, f Format, table *colormap.Table, width, height int) error {
	switch f {
	case JSON:
		return errors.Wrap(json.NewEncoder(w).Encode(NewTableJSON(table)), "render: encoding json")
	case Hex:
		return errors.Wrap(json.NewEncoder(w).Encode(HexJSON{Name: table.Name(), Colors: table.Hex()}), "render: encoding hex")
	case RGBA:
		_, err := w.Write(TableRGBA(table))
		return errors.Wrap(err, "render: writing rgba")
	case PNG:
		return WritePNG(w, table, width, height)
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", string(f))
}
