package engine

// ============================================================================
// PLOTFIT ENGINE TYPES — Curve-Fit Pipeline
// ============================================================================
// RawSeries (text) → NumericSeries (floats) → FitResult + SmoothCurve
//                 → ChartConfig / TableData / RegressionInfo (render-ready)
//
// Every value here is built fresh per request and never mutated afterwards.
// ============================================================================

// ============================================================================
// INPUT
// ============================================================================

// RawSeries holds the two comma-delimited fields exactly as the user typed them.
type RawSeries struct {
	XText string `json:"x"`
	YText string `json:"y"`
}

// PlotRequest is everything one "Plot" action carries.
type PlotRequest struct {
	Title string `json:"title"`
	X     string `json:"x"`
	Y     string `json:"y"`
	Kind  string `json:"kind"` // "Scatter", "Line", "Bar" (case-insensitive)
}

// Raw returns the request's data fields as a RawSeries.
func (r PlotRequest) Raw() RawSeries {
	return RawSeries{XText: r.X, YText: r.Y}
}

// ============================================================================
// NUMERIC DATA
// ============================================================================

// NumericSeries is a pair of parallel float64 sequences.
// ParseRaw guarantees len(X) == len(Y).
type NumericSeries struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Len returns the number of (x, y) pairs.
func (s NumericSeries) Len() int { return len(s.X) }

// FitResult is the ordinary least-squares line y = Slope*x + Intercept.
type FitResult struct {
	Slope     float64 `json:"m"`
	Intercept float64 `json:"b"`
	RSquared  float64 `json:"r2"`
}

// Predict evaluates the fitted line at x.
func (f FitResult) Predict(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// SmoothCurve is a spline resampled on an even grid over [min(X), max(X)].
// Reordered is set when the input X was not already ascending.
type SmoothCurve struct {
	X         []float64 `json:"x"`
	Y         []float64 `json:"y"`
	Reordered bool      `json:"reordered,omitempty"`
}

// Len returns the number of samples.
func (c *SmoothCurve) Len() int {
	if c == nil {
		return 0
	}
	return len(c.X)
}

// Fit is the output of Compute: the series it was computed from, the line,
// the optional smooth curve, and the user-visible equation.
type Fit struct {
	Series   NumericSeries `json:"series"`
	Line     FitResult     `json:"fit"`
	Smooth   *SmoothCurve  `json:"smooth,omitempty"`
	Equation string        `json:"equation"`
}

// ============================================================================
// RESULT — Render-ready output
// ============================================================================

// Result is the engine's render-ready output for one plot request.
type Result struct {
	Success bool   `json:"success"`
	Title   string `json:"title"`
	Reply   string `json:"reply,omitempty"`

	ChartConfig *ChartConfig    `json:"chartConfig,omitempty"`
	TableData   *TableData      `json:"tableData,omitempty"`
	Regression  *RegressionInfo `json:"regression,omitempty"`

	Fit    *FitResult   `json:"fit,omitempty"`
	Smooth *SmoothCurve `json:"smooth,omitempty"`

	Errors []string `json:"errors,omitempty"`
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartKind is the primary trace style.
type ChartKind string

const (
	KindScatter ChartKind = "Scatter"
	KindLine    ChartKind = "Line"
	KindBar     ChartKind = "Bar"
)

// ChartKinds lists the selectable kinds in display order.
var ChartKinds = []ChartKind{KindScatter, KindLine, KindBar}

// Series roles inside a ChartConfig.
const (
	RolePrimary = "primary"
	RoleFit     = "fit"
	RoleSmooth  = "smooth"
)

// ChartConfig describes how to render a chart. It is what the render package
// and the JSON API consume.
type ChartConfig struct {
	ChartType  ChartKind     `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis"`
	YAxis      string        `json:"yAxis"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// Primary returns the user's data trace.
func (c *ChartConfig) Primary() *ChartSeries {
	return c.seriesByRole(RolePrimary)
}

// SmoothSeries returns the spline overlay, or nil when none was produced.
func (c *ChartConfig) SmoothSeries() *ChartSeries {
	return c.seriesByRole(RoleSmooth)
}

func (c *ChartConfig) seriesByRole(role string) *ChartSeries {
	if c == nil {
		return nil
	}
	for i := range c.Series {
		if c.Series[i].Role == role {
			return &c.Series[i]
		}
	}
	return nil
}

// ChartSeries is one trace of (x, y) points.
type ChartSeries struct {
	Name       string       `json:"name"`
	Role       string       `json:"role"`
	Mode       string       `json:"mode"` // "markers", "lines+markers", "bars", "lines"
	Data       []ChartPoint `json:"data"`
	Color      string       `json:"color,omitempty"`
	Opacity    float64      `json:"opacity,omitempty"`
	Width      float64      `json:"width,omitempty"`
	Dashed     bool         `json:"dashed,omitempty"`
	ShowLegend bool         `json:"showLegend"`
}

// XValues returns the series' x coordinates.
func (s ChartSeries) XValues() []float64 {
	xs := make([]float64, len(s.Data))
	for i, p := range s.Data {
		xs[i] = p.X
	}
	return xs
}

// YValues returns the series' y coordinates.
func (s ChartSeries) YValues() []float64 {
	ys := make([]float64, len(s.Data))
	for i, p := range s.Data {
		ys[i] = p.Y
	}
	return ys
}

// ChartPoint is a single numeric data point.
type ChartPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "number"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary provides aggregate values for a table footer.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// ============================================================================
// REGRESSION INFO — equation disclosure
// ============================================================================

// RegressionInfo is what the "Show regression info" disclosure displays.
type RegressionInfo struct {
	Equation  string  `json:"equation"`
	Slope     float64 `json:"m"`
	Intercept float64 `json:"b"`
	RSquared  float64 `json:"r2"`
	Points    int     `json:"points"`
	Smoothed  bool    `json:"smoothed"`
	Samples   int     `json:"samples,omitempty"`
}
