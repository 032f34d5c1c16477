package helpers

import (
	"bytes"
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/spektr-org/divestat/dive"
	"github.com/spektr-org/divestat/schema"
	"github.com/spektr-org/divestat/units"
)

// ============================================================================
// CSV HELPER — Parses a dive-log CSV export into []dive.Record
// ============================================================================
// Consumer reads the CSV from wherever it lives (file, upload, stdin).
// Columns are discovered from the header row; malformed rows are skipped.
// ============================================================================

// sampleRows is how many rows feed date layout detection.
const sampleRows = 20

var timeLayouts = []string{"15:04:05", "15:04"}

// csvRow is a data row and the 1-based file line it starts on.
type csvRow struct {
	line   int
	fields []string
}

// ParseCSV parses CSV bytes into dive records.
func ParseCSV(data []byte, logger logrus.FieldLogger) ([]dive.Record, *schema.Config, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read CSV headers")
	}

	var rows []csvRow
	unreadable := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			unreadable++
			entry := logger.WithError(err)
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				entry = entry.WithField("line", perr.StartLine)
			}
			entry.Warn("⚠️ divestat: skipping unreadable CSV row")
			continue
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, csvRow{line: line, fields: row})
	}

	samples := make([][]string, 0, sampleRows)
	for _, row := range rows[:min(len(rows), sampleRows)] {
		samples = append(samples, row.fields)
	}
	sch, err := schema.Discover(headers, samples)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to discover CSV columns")
	}

	records := make([]dive.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := parseRow(sch, row.fields)
		if err != nil {
			logger.WithError(err).WithField("line", row.line).Warn("⚠️ divestat: skipping malformed dive")
			continue
		}
		records = append(records, rec)
	}

	logger.WithFields(logrus.Fields{
		"dives":   len(records),
		"skipped": unreadable + len(rows) - len(records),
	}).Debug("📋 divestat: parsed dive log")
	return records, sch, nil
}

func parseRow(sch *schema.Config, row []string) (dive.Record, error) {
	when, err := time.Parse(sch.DateLayout, sch.Value(row, schema.FieldDate))
	if err != nil {
		return dive.Record{}, errors.Wrap(err, "date")
	}
	if clock := sch.Value(row, schema.FieldTime); clock != "" {
		offset, err := parseClock(clock)
		if err != nil {
			return dive.Record{}, errors.Wrap(err, "time")
		}
		when = when.Add(offset)
	}

	var depth units.Depth
	if raw := sch.Value(row, schema.FieldMaxDepth); raw != "" {
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			return dive.Record{}, errors.Wrap(err, "max depth")
		}
		if sch.DepthUnit == units.Feet {
			depth.MM = units.FeetToMM(v)
		} else {
			depth.MM = int(math.Round(v * 1000))
		}
	}

	return dive.Record{
		Time:       when.UTC(),
		BuddyNames: sch.Value(row, schema.FieldBuddy),
		Guides:     sch.Value(row, schema.FieldDiveMaster),
		Depth:      depth,
		DiveMode:   dive.ParseMode(sch.Value(row, schema.FieldMode)),
	}, nil
}

// parseClock returns the time of day as an offset from midnight.
func parseClock(s string) (time.Duration, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
		lastErr = err
	}
	return 0, lastErr
}
