package render

import (
	"fmt"
	"math"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
)

// barSeries draws vertical bars on a continuous x axis. go-chart's BarChart
// is categorical and cannot share a canvas with line overlays, so bars are a
// custom chart.Series rendered alongside the ContinuousSeries.
type barSeries struct {
	name    string
	style   chart.Style
	xValues []float64
	yValues []float64
	width   float64 // in x units
}

func newBarSeries(name string, style chart.Style, xs, ys []float64) barSeries {
	return barSeries{
		name:    name,
		style:   style,
		xValues: xs,
		yValues: ys,
		width:   barWidth(xs),
	}
}

func (bs barSeries) GetName() string                { return bs.name }
func (bs barSeries) GetStyle() chart.Style          { return bs.style }
func (bs barSeries) GetYAxis() chart.YAxisType      { return chart.YAxisPrimary }
func (bs barSeries) Len() int                       { return len(bs.xValues) }
func (bs barSeries) GetValues(i int) (x, y float64) { return bs.xValues[i], bs.yValues[i] }

// Validate implements chart.Series.
func (bs barSeries) Validate() error {
	if len(bs.xValues) == 0 {
		return fmt.Errorf("bar series %q: no values", bs.name)
	}
	if len(bs.xValues) != len(bs.yValues) {
		return fmt.Errorf("bar series %q: x and y lengths differ", bs.name)
	}
	return nil
}

// Render implements chart.Series. Bars grow from y = 0.
func (bs barSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := bs.style.InheritFrom(defaults)
	half := bs.width / 2

	cb := canvasBox.Bottom
	cl := canvasBox.Left
	base := cb - yrange.Translate(0)

	for i := range bs.xValues {
		x, y := bs.xValues[i], bs.yValues[i]
		left := cl + xrange.Translate(x-half)
		right := cl + xrange.Translate(x+half)
		top := cb - yrange.Translate(y)

		r.SetFillColor(style.GetFillColor())
		r.SetStrokeColor(style.GetStrokeColor())
		r.SetStrokeWidth(style.GetStrokeWidth())
		r.MoveTo(left, top)
		r.LineTo(right, top)
		r.LineTo(right, base)
		r.LineTo(left, base)
		r.LineTo(left, top)
		r.Close()
		r.FillStroke()
	}
}

// xExtent returns the x range the bars occupy, edges included.
func (bs barSeries) xExtent() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range bs.xValues {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	half := bs.width / 2
	return lo - half, hi + half
}

// barWidth is 80% of the smallest gap between distinct x values.
func barWidth(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	gap := math.Inf(1)
	for i := 1; i < len(sorted); i++ {
		if d := sorted[i] - sorted[i-1]; d > 0 && d < gap {
			gap = d
		}
	}
	if math.IsInf(gap, 1) {
		return 1
	}
	return gap * 0.8
}
