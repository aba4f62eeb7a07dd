package engine

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

// ============================================================================
// AGGREGATORS — Summary statistics and number formatting
// ============================================================================
// Slice-based; callers materialize views with Values() first.
// ============================================================================

// Bounds returns the smallest and largest value. Panics on an empty slice,
// like floats.Min.
func Bounds(values []float64) (lo, hi float64) {
	return floats.Min(values), floats.Max(values)
}

// DistinctCount returns how many different values appear.
func DistinctCount(values []float64) int {
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// SumSquares returns Σ(v - mean(v))².
func SumSquares(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := stat.Mean(values, nil)
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return ss
}

// Residuals returns y[i] - fit.Predict(x[i]).
func Residuals(xs, ys []float64, fit FitResult) []float64 {
	res := make([]float64, len(xs))
	for i := range xs {
		res[i] = ys[i] - fit.Predict(xs[i])
	}
	return res
}

// unitScale maps [lo, hi] onto [-1, 1]. Both the midpoint and the half-range
// are computed from halves so neither overflows near ±MaxFloat64.
type unitScale struct {
	center, half float64
}

// newUnitScale requires lo < hi.
func newUnitScale(lo, hi float64) unitScale {
	return unitScale{center: lo/2 + hi/2, half: hi/2 - lo/2}
}

func (s unitScale) to(v float64) float64   { return (v - s.center) / s.half }
func (s unitScale) from(u float64) float64 { return s.center + s.half*u }

func (s unitScale) toAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = s.to(v)
	}
	return out
}

// finite reports whether every value is neither NaN nor ±Inf.
func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// FormatFixed formats v with prec decimals. A value that rounds to zero is
// printed unsigned, so tiny negative noise never shows up as "-0.00".
func FormatFixed(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if len(s) > 0 && s[0] == '-' && isAllZero(s[1:]) {
		return s[1:]
	}
	return s
}

// FormatNumber prints whole numbers without decimals and everything else
// with up to 6 significant decimals.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(RoundTo(v, 6), 'f', -1, 64)
}

// RoundTo rounds v to prec decimal places.
func RoundTo(v float64, prec int) float64 {
	return scalar.Round(v, prec)
}

func isAllZero(s string) bool {
	for _, r := range s {
		if r != '0' && r != '.' {
			return false
		}
	}
	return true
}
