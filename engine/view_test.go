package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// VIEW TESTS
// ============================================================================

type measurement struct {
	CurrentA   float64
	RamanShift float64
}

var measurementAdapter = NewPointAdapter[measurement](
	func(m measurement) float64 { return m.CurrentA },
	func(m measurement) float64 { return m.RamanShift },
)

func TestSliceView(t *testing.T) {
	v := NewSliceView(NumericSeries{X: []float64{1, 2}, Y: []float64{3, 4}})
	require.Equal(t, 2, v.Len())
	require.Equal(t, 2.0, v.X(1))
	require.Equal(t, 3.0, v.Y(0))
	require.Equal(t, 0.0, v.X(5))
	require.Equal(t, 0.0, v.Y(-1))

	xs, ys := Values(v)
	require.Equal(t, []float64{1, 2}, xs)
	require.Equal(t, []float64{3, 4}, ys)
}

func TestSortByX(t *testing.T) {
	parent := NewSliceView(NumericSeries{X: []float64{3, 1, 2, 1}, Y: []float64{30, 10, 20, 11}})
	sorted := SortByX(parent)

	xs, ys := Values(sorted)
	require.Equal(t, []float64{1, 1, 2, 3}, xs)
	require.Equal(t, []float64{10, 11, 20, 30}, ys, "ties keep input order")
	require.True(t, sorted.Reordered())

	dup, ok := sorted.FirstDuplicate()
	require.True(t, ok)
	require.Equal(t, 1.0, dup)

	// The parent is untouched.
	px, _ := Values(parent)
	require.Equal(t, []float64{3, 1, 2, 1}, px)
}

func TestSortByXAlreadySorted(t *testing.T) {
	sorted := SortByX(NewSliceView(NumericSeries{X: []float64{1, 2, 3}, Y: []float64{1, 2, 3}}))
	require.False(t, sorted.Reordered())
	_, ok := sorted.FirstDuplicate()
	require.False(t, ok)
	require.Equal(t, 0.0, sorted.X(9))
}

func TestPointAdapter(t *testing.T) {
	data := []measurement{{0.1, 1510}, {0.2, 1514}, {0.3, 1518}}
	v := measurementAdapter.Bind(data)
	require.Equal(t, 3, v.Len())
	require.Equal(t, 0.2, v.X(1))
	require.Equal(t, 1518.0, v.Y(2))
	require.Equal(t, 0.0, v.Y(3))

	fit, err := ComputeView(v)
	require.NoError(t, err)
	require.InDelta(t, 40.0, fit.Line.Slope, 1e-6)
	require.InDelta(t, 1506.0, fit.Line.Intercept, 1e-6)
	require.Nil(t, fit.Smooth)
}
