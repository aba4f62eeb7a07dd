package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// BUILDER TESTS — chart, table, regression info
// ============================================================================

func mustCompute(t *testing.T, x, y string) *Fit {
	t.Helper()
	fit, err := Compute(x, y)
	require.NoError(t, err)
	return fit
}

func TestBuildChartScatter(t *testing.T) {
	fit := mustCompute(t, "3,1,2", "6,2,4")
	cfg := BuildChart(KindScatter, "Demo", fit)
	require.NotNil(t, cfg)

	require.Equal(t, "Demo", cfg.Title)
	require.Equal(t, "Current (A)", cfg.XAxis)
	require.Equal(t, "Raman shift (cm⁻¹)", cfg.YAxis)
	require.True(t, cfg.ShowGrid)
	require.False(t, cfg.ShowLegend)
	require.Len(t, cfg.Series, 2)
	require.Nil(t, cfg.SmoothSeries())

	primary := cfg.Primary()
	require.NotNil(t, primary)
	require.Equal(t, "markers", primary.Mode)
	require.Equal(t, ColorPoints, primary.Color)
	require.True(t, primary.ShowLegend)
	require.Equal(t, []float64{3, 1, 2}, primary.XValues(), "data keeps input order")
	require.Equal(t, []float64{6, 2, 4}, primary.YValues())

	line := cfg.Series[1]
	require.Equal(t, RoleFit, line.Role)
	require.True(t, line.Dashed)
	require.False(t, line.ShowLegend)
	require.Equal(t, []float64{1, 3}, line.XValues())
	require.InDelta(t, 2.0, line.Data[0].Y, 1e-9)
	require.InDelta(t, 6.0, line.Data[1].Y, 1e-9)

	require.Equal(t, []string{ColorPoints, ColorFit}, cfg.Colors)
}

func TestBuildChartKinds(t *testing.T) {
	fit := mustCompute(t, "1,2,3,4", "1,3,2,4")

	line := BuildChart(KindLine, "", fit)
	require.Equal(t, "lines+markers", line.Primary().Mode)
	require.Equal(t, ColorPoints, line.Primary().Color)

	bar := BuildChart(KindBar, "", fit)
	require.Equal(t, "bars", bar.Primary().Mode)
	require.Equal(t, ColorBars, bar.Primary().Color)
	require.Equal(t, BarOpacity, bar.Primary().Opacity)

	smooth := bar.SmoothSeries()
	require.NotNil(t, smooth)
	require.Equal(t, ColorSmooth, smooth.Color)
	require.Equal(t, SmoothWidth, smooth.Width)
	require.Len(t, smooth.Data, DefaultSampleCount)
	require.Equal(t, 1.0, smooth.Data[0].X)
	require.Equal(t, 4.0, smooth.Data[len(smooth.Data)-1].X)
}

func TestBuildChartNil(t *testing.T) {
	require.Nil(t, BuildChart(KindScatter, "", nil))
	var cfg *ChartConfig
	require.Nil(t, cfg.Primary())
}

func TestColorForKind(t *testing.T) {
	require.Equal(t, ColorBars, ColorForKind(KindBar))
	require.Equal(t, ColorPoints, ColorForKind("Pie"))
}

func TestBuildTable(t *testing.T) {
	fit := mustCompute(t, "1,2,3,4", "2,4,6,8")
	table := BuildTable("Sample", fit)

	require.Equal(t, "Sample", table.Title)
	require.Len(t, table.Columns, 4)
	require.Equal(t, AxisLabelX, table.Columns[0].Label)
	require.Equal(t, []string{"1", "2", "2.0000", "0.0000"}, table.Rows[0])
	require.Equal(t, []string{"4", "8", "8.0000", "0.0000"}, table.Rows[3])

	require.NotNil(t, table.Summary)
	require.Equal(t, fit.Equation, table.Summary.Values["equation"])
	require.Equal(t, "0.0000", table.Summary.Values["ss_res"])
	require.Equal(t, "20.0000", table.Summary.Values["ss_tot"])
	require.Equal(t, "4", table.Summary.Values["points"])
}

func TestBuildTableEmpty(t *testing.T) {
	table := BuildTable("", nil)
	require.Empty(t, table.Rows)
	require.Nil(t, table.Summary)
}

func TestFormatEquation(t *testing.T) {
	require.Equal(t, "y = 2.00x + 0.00 | R² = 1.0000",
		FormatEquation(FitResult{Slope: 2, Intercept: -1e-16, RSquared: 0.99999999}))
	require.Equal(t, "y = -0.50x + -3.25 | R² = 0.8100",
		FormatEquation(FitResult{Slope: -0.5, Intercept: -3.25, RSquared: 0.81}))
}

func TestBuildRegressionInfo(t *testing.T) {
	fit := mustCompute(t, "1,2,3,4,5", "2,3,5,4,6")
	info := BuildRegressionInfo(fit)

	require.Equal(t, "y = 0.90x + 1.30 | R² = 0.8100", info.Equation)
	require.Equal(t, 5, info.Points)
	require.True(t, info.Smoothed)
	require.Equal(t, DefaultSampleCount, info.Samples)
	require.Equal(t, "**Equation:** y = 0.90x + 1.30 | R² = 0.8100", info.Markdown())

	require.Nil(t, BuildRegressionInfo(nil))
	var empty *RegressionInfo
	require.Equal(t, "", empty.Markdown())
}
