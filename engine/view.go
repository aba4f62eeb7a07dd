package engine

import "sort"

// ============================================================================
// SERIES VIEW — Zero-Copy (x, y) Access Interface
// ============================================================================
// The fitting steps read pairs through this interface.
//
// Implementations:
//   SliceView         — wraps a NumericSeries (parsed text input)
//   SortedView        — index permutation of a parent, ordered by x
//   PointView[T]      — reads typed structs via accessor functions
//
// gonum wants contiguous slices, so Values() materializes once per step.
// ============================================================================

// SeriesView provides indexed access to (x, y) pairs.
type SeriesView interface {
	Len() int
	X(index int) float64
	Y(index int) float64
}

// Values copies a view into parallel slices.
func Values(view SeriesView) (xs, ys []float64) {
	n := view.Len()
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = view.X(i)
		ys[i] = view.Y(i)
	}
	return xs, ys
}

// ============================================================================
// SLICE VIEW — wraps NumericSeries
// ============================================================================

// SliceView wraps a NumericSeries as a SeriesView.
// Callers must ensure len(X) == len(Y); ParseRaw does.
type SliceView struct {
	series NumericSeries
}

// NewSliceView creates a SeriesView over s.
func NewSliceView(s NumericSeries) SeriesView {
	return &SliceView{series: s}
}

func (v *SliceView) Len() int { return len(v.series.X) }

func (v *SliceView) X(i int) float64 {
	if i < 0 || i >= len(v.series.X) {
		return 0
	}
	return v.series.X[i]
}

func (v *SliceView) Y(i int) float64 {
	if i < 0 || i >= len(v.series.Y) {
		return 0
	}
	return v.series.Y[i]
}

// ============================================================================
// SORTED VIEW — ordered by x (zero-copy)
// ============================================================================

// SortedView presents a parent view in ascending x order.
// Holds indices into the parent. Ties keep their input order.
type SortedView struct {
	parent  SeriesView
	indices []int
}

// SortByX returns parent ordered by ascending x.
func SortByX(parent SeriesView) *SortedView {
	indices := make([]int, parent.Len())
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return parent.X(indices[a]) < parent.X(indices[b])
	})
	return &SortedView{parent: parent, indices: indices}
}

func (v *SortedView) Len() int { return len(v.indices) }

func (v *SortedView) X(i int) float64 {
	if i < 0 || i >= len(v.indices) {
		return 0
	}
	return v.parent.X(v.indices[i])
}

func (v *SortedView) Y(i int) float64 {
	if i < 0 || i >= len(v.indices) {
		return 0
	}
	return v.parent.Y(v.indices[i])
}

// Reordered reports whether sorting moved any pair.
func (v *SortedView) Reordered() bool {
	for i, idx := range v.indices {
		if i != idx {
			return true
		}
	}
	return false
}

// FirstDuplicate returns the first x that occurs more than once.
// Only meaningful because the view is sorted.
func (v *SortedView) FirstDuplicate() (float64, bool) {
	for i := 1; i < v.Len(); i++ {
		if v.X(i) == v.X(i-1) {
			return v.X(i), true
		}
	}
	return 0, false
}

// ============================================================================
// POINT ADAPTER — Zero-copy typed struct access
// ============================================================================
//
// Usage:
//
//	adapter := engine.NewPointAdapter[Measurement](
//	    func(m Measurement) float64 { return m.CurrentA },
//	    func(m Measurement) float64 { return m.RamanShift },
//	)
//
//	fit, err := engine.ComputeView(adapter.Bind(measurements))
//
// ============================================================================

// PointAdapter builds a SeriesView from typed structs.
// Declare once, bind many times.
type PointAdapter[T any] struct {
	x func(T) float64
	y func(T) float64
}

// NewPointAdapter creates an adapter reading x and y through the accessors.
func NewPointAdapter[T any](x, y func(T) float64) *PointAdapter[T] {
	return &PointAdapter[T]{x: x, y: y}
}

// Bind creates a SeriesView from a data slice. Zero-copy — holds reference.
func (a *PointAdapter[T]) Bind(data []T) SeriesView {
	return &PointView[T]{data: data, x: a.x, y: a.y}
}

// PointView reads typed struct fields via the adapter's accessors.
type PointView[T any] struct {
	data []T
	x    func(T) float64
	y    func(T) float64
}

func (v *PointView[T]) Len() int { return len(v.data) }

func (v *PointView[T]) X(i int) float64 {
	if i < 0 || i >= len(v.data) {
		return 0
	}
	return v.x(v.data[i])
}

func (v *PointView[T]) Y(i int) float64 {
	if i < 0 || i >= len(v.data) {
		return 0
	}
	return v.y(v.data[i])
}
