package engine

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ============================================================================
// PARSING — RawSeries text → NumericSeries
// ============================================================================
// Split on commas, trim, ParseFloat. One bad token fails the whole request;
// nothing is skipped, truncated, or padded.
// ============================================================================

// ParseRaw parses both fields of raw and checks they line up.
func ParseRaw(raw RawSeries) (NumericSeries, error) {
	xs, err := ParseValues("x", raw.XText)
	if err != nil {
		return NumericSeries{}, err
	}
	ys, err := ParseValues("y", raw.YText)
	if err != nil {
		return NumericSeries{}, err
	}
	if len(xs) != len(ys) {
		return NumericSeries{}, &ParseError{
			Field: "series",
			Err:   fmt.Errorf("%w (X has %d, Y has %d)", ErrLengthMismatch, len(xs), len(ys)),
		}
	}
	return NumericSeries{X: xs, Y: ys}, nil
}

// ParseValues parses one comma-separated field. field names the axis in errors.
func ParseValues(field, text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, newParseError(field, 0, "", ErrEmptySeries)
	}

	tokens := strings.Split(text, ",")
	values := make([]float64, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			cause := ErrInvalidNumber
			if errors.Is(err, strconv.ErrRange) {
				cause = ErrNonFinite
			}
			return nil, newParseError(field, i+1, tok, cause)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, newParseError(field, i+1, tok, ErrNonFinite)
		}
		values = append(values, v)
	}
	return values, nil
}

// ParseChartKind resolves a kind name case-insensitively. Empty means Scatter,
// the first entry of the kind selector.
func ParseChartKind(s string) (ChartKind, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return KindScatter, nil
	}
	for _, k := range ChartKinds {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", newParseError("kind", 0, s, ErrUnknownChartKind)
}
