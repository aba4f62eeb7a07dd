package render

import (
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Styling carried over from the interactive page: light gray paper, pink
// title, black axes with light grid lines.
var (
	paperColor = hexColor("#f5f5f5")
	gridColor  = hexColor("#e0e0e0")
	titleColor = hexColor("#ff0080")
	inkColor   = hexColor("#111111")
	axisColor  = drawing.ColorBlack
)

const (
	titleFontSize    = 25
	axisNameFontSize = 14
	tickFontSize     = 12
	markerWidth      = 5
	lineWidth        = 2
)

// hexColor parses "#rrggbb" or "rrggbb".
func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// withOpacity scales a color's alpha channel; opacity outside (0, 1) is ignored.
func withOpacity(c drawing.Color, opacity float64) drawing.Color {
	if opacity <= 0 || opacity >= 1 {
		return c
	}
	return c.WithAlpha(uint8(opacity * 255))
}

func titleStyle() chart.Style {
	return chart.Style{
		FontColor: titleColor,
		FontSize:  titleFontSize,
	}
}

func paperStyle() chart.Style {
	return chart.Style{
		FillColor: paperColor,
		FontColor: inkColor,
		Padding:   chart.Box{Top: 60, Left: 20, Right: 30, Bottom: 20},
	}
}

func canvasStyle() chart.Style {
	return chart.Style{FillColor: paperColor}
}

func axisNameStyle() chart.Style {
	return chart.Style{
		FontColor: axisColor,
		FontSize:  axisNameFontSize,
	}
}

func axisStyle() chart.Style {
	return chart.Style{
		StrokeColor: axisColor,
		StrokeWidth: 1,
		FontColor:   axisColor,
		FontSize:    tickFontSize,
	}
}

func gridStyle(show bool) chart.Style {
	return chart.Style{
		Hidden:      !show,
		StrokeColor: gridColor,
		StrokeWidth: 1,
	}
}
