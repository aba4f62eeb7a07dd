package engine

// ============================================================================
// TABLE BUILDER — Produces TableData from a Fit
// ============================================================================
// One row per input point, in input order: X, Y, fitted value, residual.
// ============================================================================

// Table column keys.
const (
	ColumnX        = "x"
	ColumnY        = "y"
	ColumnFitted   = "fitted"
	ColumnResidual = "residual"
)

// BuildTable produces the per-point table for a fit.
func BuildTable(title string, fit *Fit) *TableData {
	table := &TableData{
		Title: title,
		Columns: []Column{
			{Key: ColumnX, Label: AxisLabelX, Type: "number", Align: "right"},
			{Key: ColumnY, Label: AxisLabelY, Type: "number", Align: "right"},
			{Key: ColumnFitted, Label: "Fitted", Type: "number", Align: "right"},
			{Key: ColumnResidual, Label: "Residual", Type: "number", Align: "right"},
		},
		Rows: [][]string{},
	}
	if fit == nil || fit.Series.Len() == 0 {
		return table
	}

	xs, ys := fit.Series.X, fit.Series.Y
	residuals := Residuals(xs, ys, fit.Line)
	var ssRes float64
	for i := range xs {
		table.Rows = append(table.Rows, []string{
			FormatNumber(xs[i]),
			FormatNumber(ys[i]),
			FormatFixed(fit.Line.Predict(xs[i]), 4),
			FormatFixed(residuals[i], 4),
		})
		ssRes += residuals[i] * residuals[i]
	}

	table.Summary = &Summary{
		Label: "Fit",
		Values: map[string]string{
			"equation": fit.Equation,
			"ss_res":   FormatFixed(ssRes, 4),
			"ss_tot":   FormatFixed(SumSquares(ys), 4),
			"points":   FormatNumber(float64(len(xs))),
		},
	}
	return table
}
