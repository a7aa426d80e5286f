// Package sink writes the merged wide table to its output formats.
package sink

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/zigmaq/congreso-etl/internal/table"
)

// WriteCSV writes the table to path with cols as the header, in order.
// Null cells and empty strings both render as empty fields; CSV cannot
// tell them apart, the SQLite output preserves the distinction.
func WriteCSV(path string, cols []string, t *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(cols); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	record := make([]string, len(cols))
	for _, row := range t.Rows() {
		for i, c := range cols {
			record[i] = row[c]
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}
