package api

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/spectriclabs/hotcold/internal/colormap"
	"github.com/spectriclabs/hotcold/internal/render"
)

// MaxSwatchSize bounds each side of a PNG swatch.
const MaxSwatchSize = 4096

// AlgorithmInfo describes one table construction.
type AlgorithmInfo struct {
	Name      string   `json:"name"`
	TableName string   `json:"table_name"`
	Modes     []string `json:"modes,omitempty"`
}

// GetAlgorithms lists the table constructions and their options.
func (a *API) GetAlgorithms(c echo.Context) error {
	modes := make([]string, 0, len(colormap.Modes))
	for _, m := range colormap.Modes {
		modes = append(modes, m.String())
	}
	for k := 0; k < colormap.NumAnchors; k++ {
		modes = append(modes, colormap.Order(k).String())
	}
	return c.JSON(http.StatusOK, []AlgorithmInfo{
		{Name: string(colormap.Curve), TableName: colormap.Curve.TableName(), Modes: modes},
		{Name: string(colormap.Bezier), TableName: colormap.Bezier.TableName()},
	})
}

// GetColormap builds a table from the :algorithm path parameter and the
// lutsize, neutral, mode, weight and name query parameters, and renders
// it in the requested format (json, rgba, png or hex).
func (a *API) GetColormap(c echo.Context) error {
	table, err := a.buildTable(c)
	if err != nil {
		return err
	}

	var formatName string
	width := a.Cfg.SwatchWidth
	height := table.Len()
	if height > 1024 {
		height = 1024
	}
	err = echo.QueryParamsBinder(c).
		String("format", &formatName).
		Int("width", &width).
		Int("height", &height).
		BindError()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if format == render.PNG && (width <= 0 || height <= 0 || width > MaxSwatchSize || height > MaxSwatchSize) {
		return echo.NewHTTPError(http.StatusBadRequest,
			"swatch sides must be within [1, "+strconv.Itoa(MaxSwatchSize)+"]")
	}

	var out bytes.Buffer
	if err := render.Encode(&out, format, table, width, height); err != nil {
		a.Logger.Error(
			"Error rendering table",
			zap.String("name", table.Name()),
			zap.String("format", string(format)),
			zap.Error(err),
		)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, format.ContentType(), out.Bytes())
}

// GetMappedData maps the comma separated values of the data query
// parameter through a table and returns RGBA bytes. zmin and zmax default
// to the data's own range.
func (a *API) GetMappedData(c echo.Context) error {
	table, err := a.buildTable(c)
	if err != nil {
		return err
	}

	data, err := parseData(c.QueryParam("data"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	zmin, zmax := 0.0, 0.0
	if len(data) > 0 {
		zmin, zmax = floats.Min(data), floats.Max(data)
	}
	err = echo.QueryParamsBinder(c).
		Float64("zmin", &zmin).
		Float64("zmax", &zmax).
		BindError()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if zmin > zmax {
		return echo.NewHTTPError(http.StatusBadRequest, "zmin must not exceed zmax")
	}

	return c.Blob(http.StatusOK, render.RGBA.ContentType(), render.MapData(table, data, zmin, zmax))
}

func (a *API) buildTable(c echo.Context) (*colormap.Table, error) {
	algorithm, err := colormap.ParseAlgorithm(c.Param("algorithm"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	opts := a.Cfg.Options(algorithm)
	var modeName string
	err = echo.QueryParamsBinder(c).
		Int("lutsize", &opts.LUTSize).
		Float64("neutral", &opts.Neutral).
		Float64("weight", &opts.Weight).
		String("mode", &modeName).
		String("name", &opts.Name).
		BindError()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if opts.Mode, err = colormap.ParseMode(modeName); err != nil {
		return nil, a.tableError(c, err)
	}

	table, err := colormap.Build(opts)
	if err != nil {
		return nil, a.tableError(c, err)
	}
	a.Logger.Debug(
		"Built table",
		zap.String("name", table.Name()),
		zap.String("algorithm", string(algorithm)),
		zap.Int("lutsize", table.Len()),
		zap.Float64("neutral", opts.Neutral),
	)
	return table, nil
}

func (a *API) tableError(c echo.Context, err error) error {
	if errors.Is(err, colormap.ErrInvalidArgument) {
		a.Logger.Info(
			"Rejected table request",
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a.Logger.Error("Error building table", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func parseData(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	data := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "data value %d", i)
		}
		data[i] = v
	}
	return data, nil
}
