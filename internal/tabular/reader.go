// Package tabular reads delimited exports into ordered, header-keyed records.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one data row keyed by header name.
type Record struct {
	Line   int // 1-based line of the row in the source, header is line 1
	Values map[string]string
}

// Get returns the trimmed value of field, or "" when the field is absent.
// Cells holding "nan" in any case read as empty, matching pandas NA handling.
func (r Record) Get(field string) string {
	v := strings.TrimSpace(r.Values[field])
	if strings.EqualFold(v, "nan") {
		return ""
	}
	return v
}

// Has reports whether field is present and non-blank.
func (r Record) Has(field string) bool {
	return r.Get(field) != ""
}

// Read opens path and reads every record in it.
func Read(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	records, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return records, nil
}

// ReadFrom reads a header row followed by data rows. Ragged rows are padded
// with empty values; surplus cells are dropped.
func ReadFrom(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		values := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				values[name] = row[i]
			} else {
				values[name] = ""
			}
		}
		records = append(records, Record{Line: line, Values: values})
	}
	return records, nil
}
