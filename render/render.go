// Package render draws an engine.ChartConfig as a PNG or SVG image.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/spektr-org/plotfit/engine"
)

// Format is an output image encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 1024
	DefaultHeight = 576
)

// ErrNoChart is returned when there is nothing to draw.
var ErrNoChart = errors.New("render: chart config has no data")

// ParseFormat resolves "png" or "svg" case-insensitively. Empty means PNG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	}
	return "", fmt.Errorf("render: unknown image format %q (must be png or svg)", s)
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Option configures rendering.
type Option func(*options)

type options struct {
	width, height int
}

// WithSize sets the canvas size; non-positive values keep the default.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// Render writes cfg to w in the requested format.
func Render(w io.Writer, cfg *engine.ChartConfig, format Format, opts ...Option) error {
	o := options{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&o)
	}

	ch, err := Build(cfg)
	if err != nil {
		return err
	}
	ch.Width = o.width
	ch.Height = o.height

	provider := chart.PNG
	if format == FormatSVG {
		provider = chart.SVG
		escapeText(ch)
	}

	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Bytes renders into a fresh buffer.
func Bytes(cfg *engine.ChartConfig, format Format, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, cfg, format, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Build translates cfg into a go-chart Chart without rendering it.
func Build(cfg *engine.ChartConfig) (*chart.Chart, error) {
	if cfg == nil || cfg.Primary() == nil || len(cfg.Primary().Data) == 0 {
		return nil, ErrNoChart
	}

	ch := &chart.Chart{
		Title:      cfg.Title,
		TitleStyle: titleStyle(),
		Background: paperStyle(),
		Canvas:     canvasStyle(),
		XAxis: chart.XAxis{
			Name:           cfg.XAxis,
			NameStyle:      axisNameStyle(),
			Style:          axisStyle(),
			GridMajorStyle: gridStyle(cfg.ShowGrid),
			GridMinorStyle: gridStyle(cfg.ShowGrid),
		},
		YAxis: chart.YAxis{
			Name:           cfg.YAxis,
			NameStyle:      axisNameStyle(),
			Style:          axisStyle(),
			GridMajorStyle: gridStyle(cfg.ShowGrid),
			GridMinorStyle: gridStyle(cfg.ShowGrid),
		},
		YAxisSecondary: chart.YAxis{
			Style: chart.Style{Hidden: true},
		},
	}

	var bars *barSeries
	for _, s := range cfg.Series {
		if len(s.Data) == 0 {
			continue
		}
		if s.Role == engine.RolePrimary && cfg.ChartType == engine.KindBar {
			b := newBarSeries(s.Name, barStyle(s), s.XValues(), s.YValues())
			bars = &b
			ch.Series = append(ch.Series, b)
			continue
		}
		ch.Series = append(ch.Series, chart.ContinuousSeries{
			Name:    s.Name,
			Style:   seriesStyle(s),
			XValues: s.XValues(),
			YValues: s.YValues(),
		})
	}

	if bars != nil {
		applyBarRanges(ch, cfg, *bars)
	}
	return ch, nil
}

// escapeText prepares user-visible strings for the SVG provider, which
// writes text nodes verbatim.
func escapeText(ch *chart.Chart) {
	ch.Title = html.EscapeString(ch.Title)
	ch.XAxis.Name = html.EscapeString(ch.XAxis.Name)
	ch.YAxis.Name = html.EscapeString(ch.YAxis.Name)
}

// applyBarRanges widens x by half a bar on each side and pulls y down (or
// up) to 0 so bars have a baseline.
func applyBarRanges(ch *chart.Chart, cfg *engine.ChartConfig, bars barSeries) {
	xlo, xhi := bars.xExtent()
	ylo, yhi := 0.0, 0.0
	for _, s := range cfg.Series {
		for _, p := range s.Data {
			xlo = math.Min(xlo, p.X)
			xhi = math.Max(xhi, p.X)
			ylo = math.Min(ylo, p.Y)
			yhi = math.Max(yhi, p.Y)
		}
	}
	if yhi == ylo {
		yhi = ylo + 1
	}
	pad := (yhi - ylo) * 0.05
	if ylo < 0 {
		ylo -= pad
	}
	if yhi > 0 {
		yhi += pad
	}
	ch.XAxis.Range = &chart.ContinuousRange{Min: xlo, Max: xhi}
	ch.YAxis.Range = &chart.ContinuousRange{Min: ylo, Max: yhi}
}

func seriesStyle(s engine.ChartSeries) chart.Style {
	color := withOpacity(hexColor(s.Color), s.Opacity)
	width := s.Width
	if width == 0 {
		width = lineWidth
	}

	style := chart.Style{
		StrokeColor: color,
		StrokeWidth: width,
	}
	switch s.Mode {
	case "markers":
		style.StrokeWidth = chart.Disabled
		style.StrokeColor = drawing.ColorTransparent
		style.DotWidth = markerWidth
		style.DotColor = color
	case "lines+markers":
		style.DotWidth = markerWidth
		style.DotColor = color
	}
	if s.Dashed {
		style.StrokeDashArray = []float64{6, 4}
	}
	return style
}

func barStyle(s engine.ChartSeries) chart.Style {
	color := withOpacity(hexColor(s.Color), s.Opacity)
	return chart.Style{
		FillColor:   color,
		StrokeColor: color,
		StrokeWidth: 1,
	}
}
