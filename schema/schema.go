package schema

import (
	"github.com/spektr-org/divestat/units"
)

// ============================================================================
// SCHEMA — Maps the columns of a dive-log CSV export to dive fields
// ============================================================================
// Auto-discovered from the header row and a sample of data rows. The CSV
// helper uses it to turn rows into dive records.
// ============================================================================

// Field is a dive attribute read from CSV.
type Field string

const (
	FieldDate       Field = "date"
	FieldTime       Field = "time"
	FieldBuddy      Field = "buddy"
	FieldDiveMaster Field = "divemaster"
	FieldMaxDepth   Field = "maxdepth"
	FieldMode       Field = "divemode"
)

// Config describes where each dive field lives in a CSV file.
type Config struct {
	// Columns maps a field to its zero-based column index.
	Columns map[Field]int `json:"columns"`

	// DateLayout is the Go time layout detected for the date column.
	DateLayout string `json:"dateLayout"`

	// DepthUnit is the unit of the max depth column.
	DepthUnit units.Length `json:"depthUnit"`

	// Columns present in the file that map to no field.
	SkippedColumns []string `json:"skippedColumns,omitempty"`
}

// Column returns the index of f, or false when the file lacks it.
func (c *Config) Column(f Field) (int, bool) {
	idx, ok := c.Columns[f]
	return idx, ok
}

// Value returns the trimmed cell for f in row, or "" when absent.
func (c *Config) Value(row []string, f Field) string {
	idx, ok := c.Column(f)
	if !ok || idx >= len(row) {
		return ""
	}
	return trim(row[idx])
}
