package engine

import (
	"errors"
	"fmt"
)

// ============================================================================
// ERRORS — ParseError / MathError taxonomy
// ============================================================================
// Kinds stay distinct internally (errors.As on *ParseError / *MathError,
// errors.Is on the sentinels). Boundaries collapse them with UserMessage.
// ============================================================================

// Parse failures.
var (
	ErrEmptySeries      = errors.New("no values supplied")
	ErrInvalidNumber    = errors.New("not a number")
	ErrNonFinite        = errors.New("value must be finite")
	ErrLengthMismatch   = errors.New("X and Y must have equal length")
	ErrUnknownChartKind = errors.New("unknown chart kind")
)

// Math failures.
var (
	ErrTooFewPoints = errors.New("at least 2 points are required")
	ErrConstantX    = errors.New("X must contain at least 2 distinct values")
	ErrZeroVariance = errors.New("Y has zero variance, R² is undefined")
	ErrDuplicateX   = errors.New("X values must be unique to fit a spline")
	ErrSplineFit    = errors.New("spline construction failed")

	ErrIllConditioned = errors.New("values span too wide a range for a finite fit")
)

// ParseError reports input that could not be turned into a NumericSeries.
type ParseError struct {
	Field string // "x", "y", "kind", or "series"
	Index int    // 1-based token position, 0 when not token specific
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	switch {
	case e.Index > 0:
		return fmt.Sprintf("parse error: %s value #%d %q: %v", axisName(e.Field), e.Index, e.Token, e.Err)
	case e.Token != "":
		return fmt.Sprintf("parse error: %s %q: %v", e.Field, e.Token, e.Err)
	case e.Field == "x" || e.Field == "y":
		return fmt.Sprintf("parse error: %s values: %v", axisName(e.Field), e.Err)
	default:
		return fmt.Sprintf("parse error: %v", e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// MathError reports a series that parsed but cannot be fitted.
type MathError struct {
	Op  string // "regression" or "spline"
	Err error
}

func (e *MathError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Op, e.Err)
}

func (e *MathError) Unwrap() error { return e.Err }

func newParseError(field string, index int, token string, err error) *ParseError {
	return &ParseError{Field: field, Index: index, Token: token, Err: err}
}

func newMathError(op string, err error) *MathError {
	return &MathError{Op: op, Err: err}
}

// IsParseError reports whether err is, or wraps, a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsMathError reports whether err is, or wraps, a *MathError.
func IsMathError(err error) bool {
	var me *MathError
	return errors.As(err, &me)
}

// UserMessage renders any pipeline failure as the single message shown to users.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return "Error: " + err.Error()
}

func axisName(field string) string {
	switch field {
	case "x":
		return "X"
	case "y":
		return "Y"
	}
	return field
}
