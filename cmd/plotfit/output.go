package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spektr-org/plotfit/engine"
)

// ============================================================================
// OUTPUT — json, pretty, text, csv
// ============================================================================

var outputFormats = []string{"json", "pretty", "text", "csv"}

func validateFormat(format string) error {
	for _, f := range outputFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (must be %s)", format, strings.Join(outputFormats, ", "))
}

func writeResult(w io.Writer, result *engine.Result, format string) error {
	switch format {
	case "csv":
		return writeCSV(w, result)
	case "text":
		return writeText(w, result)
	default:
		return writeJSON(w, result, format)
	}
}

func writeText(w io.Writer, result *engine.Result) error {
	lines := []string{}
	if result != nil && result.Title != "" {
		lines = append(lines, result.Title)
	}
	if result != nil && result.Regression != nil {
		lines = append(lines, result.Regression.Markdown())
		if result.Regression.Smoothed {
			lines = append(lines, fmt.Sprintf("Smoothed: %d samples", result.Regression.Samples))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "No result.")
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// writeCSV emits the per-point table; results without one fall back to a
// single summary row.
func writeCSV(w io.Writer, result *engine.Result) error {
	cw := csv.NewWriter(w)

	if result != nil && result.TableData != nil && len(result.TableData.Columns) > 0 {
		writeTableCSV(cw, result.TableData)
	} else {
		reply := "No data"
		if result != nil && result.Reply != "" {
			reply = result.Reply
		}
		_ = cw.Write([]string{"Summary"})
		_ = cw.Write([]string{reply})
	}

	cw.Flush()
	return cw.Error()
}

func writeTableCSV(cw *csv.Writer, table *engine.TableData) {
	headers := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		headers[i] = c.Label
	}
	_ = cw.Write(headers)
	for _, row := range table.Rows {
		_ = cw.Write(row)
	}
}

func writeJSON(w io.Writer, v interface{}, format string) error {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
