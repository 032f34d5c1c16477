package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"golang.org/x/text/message"

	"github.com/spektr-org/divestat/engine"
)

// ============================================================================
// OUTPUT
// ============================================================================

type cliRow struct {
	Label string   `json:"label"`
	Count int      `json:"count"`
	Dates []string `json:"dates,omitempty"` // member dive dates, membership queries only
}

type cliOutput struct {
	Type   string   `json:"type"`
	Binner string   `json:"binner,omitempty"`
	Total  int      `json:"total"`
	Rows   []cliRow `json:"rows"`
}

func writeResult(w io.Writer, res *engine.Result, format string, p *message.Printer) error {
	switch format {
	case "json", "pretty":
		return writeJSON(w, toOutput(res), format == "pretty")
	case "csv":
		return writeCSV(w, engine.BuildTable(res, p))
	case "text", "":
		return writeText(w, engine.BuildTable(res, p))
	}
	return errors.Errorf("unknown output format %q", format)
}

func toOutput(res *engine.Result) cliOutput {
	out := cliOutput{Type: res.Type, Binner: res.Binner, Total: res.Total, Rows: make([]cliRow, 0, len(res.Rows))}
	for _, row := range res.Rows {
		r := cliRow{Label: row.Label, Count: row.Count}
		for _, d := range row.Dives {
			r.Dates = append(r.Dates, d.When().Format("2006-01-02 15:04"))
		}
		out.Rows = append(out.Rows, r)
	}
	return out
}

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return errors.Wrap(enc.Encode(v), "failed to marshal output")
}

func writeCSV(w io.Writer, table *engine.TableData) error {
	cw := csv.NewWriter(w)
	headers := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		headers[i] = c.Label
	}
	if err := cw.Write(headers); err != nil {
		return errors.Wrap(err, "failed to write CSV")
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return errors.Wrap(err, "failed to write CSV")
	}
	return nil
}

func writeText(w io.Writer, table *engine.TableData) error {
	fmt.Fprintln(w, table.Title)
	fmt.Fprintln(w, strings.Repeat("─", len([]rune(table.Title))))
	if len(table.Rows) == 0 {
		fmt.Fprintln(w, "No dives.")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, row := range table.Rows {
		fmt.Fprintf(tw, "%s\t%s\t\n", row[0], row[1])
	}
	return errors.Wrap(tw.Flush(), "failed to write table")
}
