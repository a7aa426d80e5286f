package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadCSV loads a CSV file into a Table. The first record is the header.
// Empty cells are loaded as nulls (absent from the row map); there is no way
// to distinguish an empty string from a null in CSV input, and the unpivot
// layer treats both the same way.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read csv %s: empty file", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read csv %s: header: %w", path, err)
	}

	t := New(header...)
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv %s: line %d: %w", path, line, err)
		}
		row := make(Row, len(header))
		for i, v := range rec {
			if i >= len(header) || v == "" {
				continue
			}
			row[header[i]] = v
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}
