package schema

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/spektr-org/divestat/units"
)

// ============================================================================
// AUTO-DISCOVERY — Header classification
// ============================================================================
// Classification pipeline:
//   1. Normalise each header and strip a unit suffix ("maxdepth [ft]")
//   2. Match it against known aliases per field
//   3. Detect the date layout from sample values
// ============================================================================

// ErrNoDateColumn is returned when no header looks like a dive date.
var ErrNoDateColumn = errors.New("no date column")

var fieldAliases = map[string]Field{
	"date":       FieldDate,
	"dive date":  FieldDate,
	"time":       FieldTime,
	"dive time":  FieldTime,
	"buddy":      FieldBuddy,
	"buddies":    FieldBuddy,
	"divemaster": FieldDiveMaster,
	"dive guide": FieldDiveMaster,
	"diveguide":  FieldDiveMaster,
	"guide":      FieldDiveMaster,
	"maxdepth":   FieldMaxDepth,
	"max depth":  FieldMaxDepth,
	"max. depth": FieldMaxDepth,
	"depth":      FieldMaxDepth,
	"divemode":   FieldMode,
	"dive mode":  FieldMode,
	"mode":       FieldMode,
}

// unitSuffix matches "[m]", "(ft)" and similar at the end of a header.
var unitSuffix = regexp.MustCompile(`\s*[\[(]\s*([a-zA-Z.]+)\s*[\])]\s*$`)

// dateLayouts are tried in order against sample values.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02.01.2006",
	"01/02/2006",
	"2006-01-02T15:04:05Z07:00",
}

// Discover builds a Config from the CSV header row and sample data rows.
func Discover(headers []string, samples [][]string) (*Config, error) {
	cfg := &Config{Columns: map[Field]int{}, DepthUnit: units.Meters}

	for i, header := range headers {
		name, unit := splitUnit(header)
		field, ok := fieldAliases[name]
		if !ok {
			cfg.SkippedColumns = append(cfg.SkippedColumns, trim(header))
			continue
		}
		if _, dup := cfg.Columns[field]; dup {
			cfg.SkippedColumns = append(cfg.SkippedColumns, trim(header))
			continue
		}
		cfg.Columns[field] = i
		if field == FieldMaxDepth && unit != "" {
			l, err := units.ParseLength(unit)
			if err != nil {
				return nil, errors.Wrapf(err, "column %q", header)
			}
			cfg.DepthUnit = l
		}
	}

	if _, ok := cfg.Columns[FieldDate]; !ok {
		return nil, ErrNoDateColumn
	}

	var dates []string
	for _, row := range samples {
		if v := cfg.Value(row, FieldDate); v != "" {
			dates = append(dates, v)
		}
	}
	cfg.DateLayout = detectDateLayout(dates)
	return cfg, nil
}

// splitUnit returns the normalised header name and its unit suffix, if any.
func splitUnit(header string) (string, string) {
	h := strings.ToLower(trim(header))
	var unit string
	if m := unitSuffix.FindStringSubmatch(h); m != nil {
		unit = strings.TrimSuffix(m[1], ".")
		h = h[:len(h)-len(m[0])]
	}
	return strings.Join(strings.Fields(h), " "), unit
}

// detectDateLayout picks the layout that parses the most samples, earlier
// layouts winning ties. Without parseable samples the ISO layout is assumed.
func detectDateLayout(samples []string) string {
	best, bestHits := dateLayouts[0], 0
	for _, layout := range dateLayouts {
		hits := 0
		for _, s := range samples {
			if _, err := time.Parse(layout, s); err == nil {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = layout, hits
		}
	}
	return best
}

func trim(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\ufeff\""))
}
