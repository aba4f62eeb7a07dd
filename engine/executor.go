package engine

import (
	"go.uber.org/zap"
)

// ============================================================================
// EXECUTOR — Parse → Fit → Smooth → Build
// ============================================================================
// Entry points:
//   Compute(xText, yText, opts...)   text in, *Fit out
//   ComputeView(view, opts...)       any SeriesView in, *Fit out
//   Execute(req, opts...)            PlotRequest in, render-ready *Result out
//
// Pipeline:
//   1. Parse both fields (ParseError on bad token / length mismatch)
//   2. OLS line + R² (MathError on degenerate input)
//   3. Spline overlay when points > threshold (MathError on duplicate x)
//   4. Equation text
//   5. Chart / table / regression builders (Execute only)
//
// Any failure aborts the whole request; no partial result is returned.
// Nothing here keeps state between calls.
// ============================================================================

// Compute parses the raw fields and fits them.
func Compute(xText, yText string, opts ...Option) (*Fit, error) {
	return computeRaw(RawSeries{XText: xText, YText: yText}, applyOptions(opts))
}

func computeRaw(raw RawSeries, cfg *config) (*Fit, error) {
	series, err := ParseRaw(raw)
	if err != nil {
		cfg.Logger.Debug("📥 parse failed", zap.Error(err))
		return nil, err
	}

	fit, err := computeView(NewSliceView(series), cfg)
	if err != nil {
		return nil, err
	}
	fit.Series = series
	return fit, nil
}

// ComputeView fits any SeriesView. The returned Fit.Series is a copy of the
// view's pairs in their original order.
func ComputeView(view SeriesView, opts ...Option) (*Fit, error) {
	return computeView(view, applyOptions(opts))
}

func computeView(view SeriesView, cfg *config) (*Fit, error) {
	log := cfg.Logger
	n := view.Len()
	log.Debug("🔧 fitting series", zap.Int("points", n))

	xs, ys := Values(view)
	line, err := fitLine(xs, ys)
	if err != nil {
		log.Debug("📉 regression failed", zap.Int("points", n), zap.Error(err))
		return nil, err
	}

	fit := &Fit{
		Series: NumericSeries{X: xs, Y: ys},
		Line:   line,
	}

	if n > cfg.SmoothingThreshold {
		curve, err := Smooth(view, cfg.SampleCount)
		if err != nil {
			log.Debug("〰️ spline failed", zap.Int("points", n), zap.Error(err))
			return nil, err
		}
		fit.Smooth = curve
		if curve.Reordered {
			log.Debug("🔀 x values sorted for spline", zap.Int("points", n))
		}
	}

	fit.Equation = FormatEquation(line)

	log.Debug("📈 fit computed",
		zap.Int("points", n),
		zap.Float64("m", line.Slope),
		zap.Float64("b", line.Intercept),
		zap.Float64("r2", line.RSquared),
		zap.Int("samples", fit.Smooth.Len()),
	)
	return fit, nil
}

// Execute runs one plot request end to end and returns a render-ready Result.
func Execute(req PlotRequest, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)

	kind, err := ParseChartKind(req.Kind)
	if err != nil {
		return nil, err
	}

	fit, err := computeRaw(req.Raw(), cfg)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Success:     true,
		Title:       req.Title,
		Reply:       fit.Equation,
		ChartConfig: BuildChart(kind, req.Title, fit),
		TableData:   BuildTable(req.Title, fit),
		Regression:  BuildRegressionInfo(fit),
		Fit:         &fit.Line,
		Smooth:      fit.Smooth,
	}

	cfg.Logger.Debug("🧾 plot built",
		zap.String("kind", string(kind)),
		zap.Int("series", len(result.ChartConfig.Series)),
	)
	return result, nil
}

// Failure collapses any pipeline error into the single user-facing result.
func Failure(req PlotRequest, err error) *Result {
	msg := UserMessage(err)
	return &Result{
		Success: false,
		Title:   req.Title,
		Reply:   msg,
		Errors:  []string{msg},
	}
}
