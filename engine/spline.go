package engine

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// ============================================================================
// SPLINE — Cubic interpolant resampled on an even grid
// ============================================================================
// Not-a-knot boundary conditions: the curve passes through every point and
// matches a degree-3 interpolating B-spline. Input is sorted by x first;
// duplicate x values cannot be interpolated and fail.
// ============================================================================

// minSplinePoints is the smallest input NotAKnotCubic accepts.
const minSplinePoints = 4

// Smooth fits the spline through view and evaluates it at samples evenly
// spaced points over [min(X), max(X)], both ends included.
func Smooth(view SeriesView, samples int) (*SmoothCurve, error) {
	if view.Len() < minSplinePoints {
		return nil, newMathError("spline", fmt.Errorf("%w: need %d points, got %d", ErrTooFewPoints, minSplinePoints, view.Len()))
	}
	if samples < 2 {
		samples = DefaultSampleCount
	}

	sorted := SortByX(view)
	if dup, ok := sorted.FirstDuplicate(); ok {
		return nil, newMathError("spline", fmt.Errorf("%w (x = %s repeats)", ErrDuplicateX, FormatNumber(dup)))
	}
	xs, ys := Values(sorted)

	// The interpolant is fitted on x mapped to [-1, 1]; cubics stay cubics
	// under the mapping, and the knot spacing can no longer underflow.
	lo, hi := xs[0], xs[len(xs)-1]
	scale := newUnitScale(lo, hi)

	var spline interp.NotAKnotCubic
	if err := fitSpline(&spline, scale.toAll(xs), ys); err != nil {
		return nil, err
	}

	units := floats.Span(make([]float64, samples), -1, 1)
	grid := make([]float64, samples)
	values := make([]float64, samples)
	for i, u := range units {
		grid[i] = scale.from(u)
		values[i] = spline.Predict(u)
	}
	grid[0], grid[len(grid)-1] = lo, hi

	if !finite(values...) {
		return nil, newMathError("spline", ErrIllConditioned)
	}

	return &SmoothCurve{X: grid, Y: values, Reordered: sorted.Reordered()}, nil
}

// fitSpline converts both error returns and library panics into *MathError.
func fitSpline(spline *interp.NotAKnotCubic, xs, ys []float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newMathError("spline", fmt.Errorf("%w: %v", ErrSplineFit, r))
		}
	}()
	if fitErr := spline.Fit(xs, ys); fitErr != nil {
		return newMathError("spline", fmt.Errorf("%w: %v", ErrSplineFit, fitErr))
	}
	return nil
}
