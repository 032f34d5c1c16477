package engine

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/message"

	"github.com/spektr-org/divestat/dive"
)

// ============================================================================
// EXECUTOR — Category + binner selection, rendered rows
// ============================================================================
// Entry point: reg.Execute(query, dives, printer)
//
// Pipeline:
//   1. Select category (unknown index is an error)
//   2. Select binner (out-of-range index falls back to the first)
//   3. Filter dives
//   4. Bin with members or with counts
//   5. Render labels through the printer
// ============================================================================

// ErrUnknownType is returned when a query names a category that does not exist.
var ErrUnknownType = errors.New("unknown statistic type")

// Query selects what to compute.
type Query struct {
	Type   int    `json:"type"`
	Binner int    `json:"binner"`
	Counts bool   `json:"counts"` // count only, do not keep members
	Filter Filter `json:"filter"`
}

// Row is one rendered bin.
type Row struct {
	Label string      `json:"label"`
	Count int         `json:"count"`
	Dives []dive.Dive `json:"-"` // nil for count queries
}

// Result is the rendered output of one query.
type Result struct {
	Type   string `json:"type"`
	Binner string `json:"binner,omitempty"` // empty when the category has a single binner
	Rows   []Row  `json:"rows"`
	Total  int    `json:"total"` // sum of row counts
}

// Execute runs q against dives and renders the bins with p.
func (r *Registry) Execute(q Query, dives []dive.Dive, p *message.Printer) (*Result, error) {
	t, ok := r.Type(q.Type)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "type index %d (have %d)", q.Type, r.Len())
	}
	b := GetBinner(t, q.Binner)
	if b == nil {
		return nil, errors.Errorf("statistic %q has no binners", t.Name(nil))
	}

	selected := ApplyFilter(dives, q.Filter)
	result := &Result{Type: t.Name(p)}
	if len(t.Binners()) > 1 {
		result.Binner = b.Name(p)
	}

	if q.Counts {
		bins := b.CountDives(selected)
		result.Rows = make([]Row, 0, len(bins))
		for _, bin := range bins {
			result.Rows = append(result.Rows, Row{Label: bin.Bin.Format(p), Count: bin.Count})
			result.Total += bin.Count
		}
	} else {
		bins := b.BinDives(selected)
		result.Rows = make([]Row, 0, len(bins))
		for _, bin := range bins {
			result.Rows = append(result.Rows, Row{Label: bin.Bin.Format(p), Count: len(bin.Dives), Dives: bin.Dives})
			result.Total += len(bin.Dives)
		}
	}

	r.logger.WithFields(logrus.Fields{
		"type":     t.Name(nil),
		"binner":   b.Name(nil),
		"dives":    len(dives),
		"selected": len(selected),
		"bins":     len(result.Rows),
		"counts":   q.Counts,
	}).Debug("📊 divestat: binned dives")

	return result, nil
}

// ============================================================================
// TABLE — Result as label/count columns
// ============================================================================

// TableData is a Result laid out as a two-column table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Align string `json:"align"` // "left", "right"
}

// BuildTable lays out a Result as a table. Column headers are the category
// name and "Count" (translated through p).
func BuildTable(res *Result, p *message.Printer) *TableData {
	title := res.Type
	if res.Binner != "" {
		title = res.Type + " (" + res.Binner + ")"
	}
	table := &TableData{
		Title: title,
		Columns: []Column{
			{Key: "label", Label: res.Type, Align: "left"},
			{Key: "count", Label: translate(p, "Count"), Align: "right"},
		},
		Rows: make([][]string, 0, len(res.Rows)),
	}
	for _, row := range res.Rows {
		table.Rows = append(table.Rows, []string{row.Label, strconv.Itoa(row.Count)})
	}
	return table
}
