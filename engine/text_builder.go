package engine

// ============================================================================
// TEXT BUILDER — Equation text and the regression disclosure
// ============================================================================
// The equation format is user-visible and kept byte-for-byte:
//   y = 2.00x + 0.00 | R² = 1.0000
// ============================================================================

// FormatEquation renders a FitResult as the user-visible equation string.
func FormatEquation(f FitResult) string {
	return "y = " + FormatFixed(f.Slope, 2) + "x + " + FormatFixed(f.Intercept, 2) +
		" | R² = " + FormatFixed(f.RSquared, 4)
}

// BuildRegressionInfo produces the data behind "Show regression info".
func BuildRegressionInfo(fit *Fit) *RegressionInfo {
	if fit == nil {
		return nil
	}
	info := &RegressionInfo{
		Equation:  fit.Equation,
		Slope:     fit.Line.Slope,
		Intercept: fit.Line.Intercept,
		RSquared:  fit.Line.RSquared,
		Points:    fit.Series.Len(),
		Smoothed:  fit.Smooth != nil,
	}
	if info.Equation == "" {
		info.Equation = FormatEquation(fit.Line)
	}
	if fit.Smooth != nil {
		info.Samples = fit.Smooth.Len()
	}
	return info
}

// Markdown renders the disclosure body shown under "Show regression info".
func (r *RegressionInfo) Markdown() string {
	if r == nil {
		return ""
	}
	return "**Equation:** " + r.Equation
}
