package sink

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/zigmaq/congreso-etl/internal/table"
)

const sqliteTable = "perfiles"

// WriteSQLite writes the table to a SQLite database at path, replacing any
// existing file. dip_id is stored as INTEGER and indexed; every other column
// is TEXT. Null cells become SQL NULL, distinct from the empty string.
func WriteSQLite(path string, cols []string, t *table.Table) error {
	_ = os.Remove(path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	var defs []string
	for _, c := range cols {
		typ := "TEXT"
		if c == "dip_id" {
			typ = "INTEGER"
		}
		defs = append(defs, fmt.Sprintf("%q %s", c, typ))
	}
	if _, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %q", sqliteTable)); err != nil {
		return fmt.Errorf("drop table: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("CREATE TABLE %q (%s)", sqliteTable, strings.Join(defs, ","))); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	ph := strings.TrimRight(strings.Repeat("?,", len(cols)), ",")
	var qCols []string
	for _, c := range cols {
		qCols = append(qCols, fmt.Sprintf("%q", c))
	}
	stmt, err := db.Prepare(fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)", sqliteTable, strings.Join(qCols, ","), ph))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range t.Rows() {
		args := make([]any, 0, len(cols))
		for _, c := range cols {
			if v, ok := row[c]; ok {
				args = append(args, v)
			} else {
				args = append(args, nil)
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("insert row: %w", err)
		}
	}

	idx := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_dip_id ON %q(dip_id)", sqliteTable, sqliteTable)
	if _, err := db.Exec(idx); err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	return db.Close()
}
