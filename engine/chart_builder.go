package engine

// ============================================================================
// CHART BUILDER — Produces ChartConfig from a ChartKind + Fit
// ============================================================================
// Series order is fixed: primary trace, fit line, then the optional smooth
// overlay. Only the primary trace gets a legend entry.
// ============================================================================

// Fixed axis labels.
const (
	AxisLabelX = "Current (A)"
	AxisLabelY = "Raman shift (cm⁻¹)"
)

// Palette.
const (
	ColorPoints = "#ff7ea8"
	ColorBars   = "#ffa0bd"
	ColorFit    = "#7f7f7f"
	ColorSmooth = "#000000"

	BarOpacity  = 0.8
	SmoothWidth = 2.0
)

var kindColors = map[ChartKind]string{
	KindScatter: ColorPoints,
	KindLine:    ColorPoints,
	KindBar:     ColorBars,
}

var kindModes = map[ChartKind]string{
	KindScatter: "markers",
	KindLine:    "lines+markers",
	KindBar:     "bars",
}

// ColorForKind returns the primary trace color for kind.
func ColorForKind(kind ChartKind) string {
	if c, ok := kindColors[kind]; ok {
		return c
	}
	return ColorPoints
}

// BuildChart produces a ChartConfig for a computed fit.
func BuildChart(kind ChartKind, title string, fit *Fit) *ChartConfig {
	if fit == nil || fit.Series.Len() == 0 {
		return nil
	}
	if _, ok := kindColors[kind]; !ok {
		kind = KindScatter
	}

	config := &ChartConfig{
		ChartType:  kind,
		Title:      title,
		XAxis:      AxisLabelX,
		YAxis:      AxisLabelY,
		ShowLegend: false,
		ShowGrid:   true,
	}

	config.Series = append(config.Series, buildPrimarySeries(kind, fit.Series))
	config.Series = append(config.Series, buildFitSeries(fit))
	if fit.Smooth != nil {
		config.Series = append(config.Series, buildSmoothSeries(fit.Smooth))
	}

	config.Colors = assignColors(config.Series)
	return config
}

// ============================================================================
// SERIES BUILDERS
// ============================================================================

func buildPrimarySeries(kind ChartKind, s NumericSeries) ChartSeries {
	points := make([]ChartPoint, 0, s.Len())
	for i := range s.X {
		points = append(points, ChartPoint{X: s.X[i], Y: s.Y[i]})
	}

	series := ChartSeries{
		Name:       "Data",
		Role:       RolePrimary,
		Mode:       kindModes[kind],
		Data:       points,
		Color:      ColorForKind(kind),
		ShowLegend: true,
	}
	if kind == KindBar {
		series.Opacity = BarOpacity
	}
	return series
}

// buildFitSeries draws the regression line across the data's x extent.
func buildFitSeries(fit *Fit) ChartSeries {
	lo, hi := Bounds(fit.Series.X)
	return ChartSeries{
		Name: "Fit",
		Role: RoleFit,
		Mode: "lines",
		Data: []ChartPoint{
			{X: lo, Y: fit.Line.Predict(lo)},
			{X: hi, Y: fit.Line.Predict(hi)},
		},
		Color:  ColorFit,
		Width:  1.5,
		Dashed: true,
	}
}

func buildSmoothSeries(curve *SmoothCurve) ChartSeries {
	points := make([]ChartPoint, 0, curve.Len())
	for i := range curve.X {
		points = append(points, ChartPoint{X: curve.X[i], Y: curve.Y[i]})
	}
	return ChartSeries{
		Name:  "Smooth",
		Role:  RoleSmooth,
		Mode:  "lines",
		Data:  points,
		Color: ColorSmooth,
		Width: SmoothWidth,
	}
}

func assignColors(series []ChartSeries) []string {
	colors := make([]string, len(series))
	for i, s := range series {
		colors[i] = s.Color
	}
	return colors
}
