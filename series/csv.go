package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrNoData = errors.New("series: no valid data found in CSV")

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for values (default: "y")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip before the header
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a series from an io.Reader.
//
// With a header, the value column is looked up by name; when it is absent
// the last column is used. Without a header the last column of each record
// is used. Empty, NA, NaN and null cells are skipped, as are cells that do
// not parse as numbers.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for range opts.SkipRows {
		if _, err := reader.Read(); err != nil {
			return nil, fmt.Errorf("series: skip rows: %w", err)
		}
	}

	valueIdx := -1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, fmt.Errorf("series: read header: %w", err)
		}
		valueIdx = findValueColumn(header, opts.ValueColumn)
	}

	out := Empty()
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("series: read record: %w", err)
		}

		idx := valueIdx
		if idx < 0 || idx >= len(record) {
			idx = len(record) - 1
		}
		if idx < 0 {
			continue
		}

		cell := strings.TrimSpace(strings.Trim(record[idx], "\""))
		switch cell {
		case "", "NA", "NaN", "null":
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			continue
		}
		out.Append(v)
	}

	if out.Len() == 0 {
		return nil, ErrNoData
	}
	return out, nil
}

func findValueColumn(header []string, want string) int {
	fallback := -1
	for i, h := range header {
		h = strings.TrimSpace(strings.Trim(h, "\""))
		if want != "" && h == want {
			return i
		}
		if fallback == -1 && (h == "y" || h == "value" || h == "Value") {
			fallback = i
		}
	}
	return fallback
}
