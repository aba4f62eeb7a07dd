package engine

import (
	"gonum.org/v1/gonum/stat"
)

// ============================================================================
// REGRESSION — Ordinary least squares, degree 1
// ============================================================================

// FitLine fits y = m*x + b to the view and scores it with R².
//
// Preconditions are checked up front so callers get a typed error instead of
// NaN coefficients: at least 2 points, at least 2 distinct x values, and a Y
// with non-zero variance (R² = 1 - ss_res/ss_tot is undefined otherwise).
func FitLine(view SeriesView) (FitResult, error) {
	xs, ys := Values(view)
	return fitLine(xs, ys)
}

func fitLine(xs, ys []float64) (FitResult, error) {
	if len(xs) != len(ys) {
		return FitResult{}, &ParseError{Field: "series", Err: ErrLengthMismatch}
	}
	if len(xs) < 2 {
		return FitResult{}, newMathError("regression", ErrTooFewPoints)
	}
	if DistinctCount(xs) < 2 {
		return FitResult{}, newMathError("regression", ErrConstantX)
	}
	if DistinctCount(ys) < 2 {
		return FitResult{}, newMathError("regression", ErrZeroVariance)
	}

	// Fit in unit coordinates so tiny or huge magnitudes neither underflow
	// nor overflow the sums of squares, then map back. R² is unchanged by
	// the affine rescaling.
	xlo, xhi := Bounds(xs)
	ylo, yhi := Bounds(ys)
	xScale := newUnitScale(xlo, xhi)
	yScale := newUnitScale(ylo, yhi)
	us, vs := xScale.toAll(xs), yScale.toAll(ys)

	a, b := stat.LinearRegression(us, vs, nil, false)
	r2 := stat.RSquared(us, vs, nil, a, b)

	slope := b * (yScale.half / xScale.half)
	intercept := yScale.center + yScale.half*a - slope*xScale.center
	if !finite(slope, intercept, r2) {
		return FitResult{}, newMathError("regression", ErrIllConditioned)
	}

	return FitResult{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  r2,
	}, nil
}
