package table

import (
	"fmt"
	"sort"
	"strconv"
)

// Row holds one record's cells keyed by column name. A key absent from the
// map is a null, which is distinct from a present empty string.
type Row map[string]string

// Table is an in-memory column-ordered table with sparse rows.
// It is the interchange format between the sheet processors, the profile
// builder and the output sinks.
type Table struct {
	cols  []string
	index map[string]int
	rows  []Row
}

// New creates a Table with the given initial column order.
func New(cols ...string) *Table {
	t := &Table{index: make(map[string]int)}
	t.EnsureColumns(cols)
	return t
}

// Columns returns the column names in their current order.
// The returned slice must not be mutated.
func (t *Table) Columns() []string {
	return t.cols
}

// HasColumn reports whether name is part of the schema.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the backing row slice.
func (t *Table) Rows() []Row {
	return t.rows
}

// EnsureColumns appends any column names not yet part of the schema,
// preserving the order given. Existing columns keep their position, so the
// schema union over many rows is deterministic as long as callers pass keys
// in a deterministic order.
func (t *Table) EnsureColumns(cols []string) {
	for _, c := range cols {
		if _, ok := t.index[c]; ok {
			continue
		}
		t.index[c] = len(t.cols)
		t.cols = append(t.cols, c)
	}
}

// Append adds a row. keys lists the row's cell names in insertion order and
// drives the schema union; cells absent from the schema of earlier rows stay
// null there (backfill is implicit in the sparse representation).
func (t *Table) Append(keys []string, r Row) {
	t.EnsureColumns(keys)
	t.rows = append(t.rows, r)
}

// Get returns the cell value and whether it is non-null.
func (t *Table) Get(i int, col string) (string, bool) {
	v, ok := t.rows[i][col]
	return v, ok
}

// LeftJoin merges other into t on the named key column: every row of t gains
// the cells of the first row of other with the same key value. Rows of t with
// no match keep nulls in other's columns; rows of other with no match in t
// are ignored.
func (t *Table) LeftJoin(other *Table, on string) error {
	if !t.HasColumn(on) {
		return fmt.Errorf("left join: column %q missing from left table", on)
	}
	if !other.HasColumn(on) {
		return fmt.Errorf("left join: column %q missing from right table", on)
	}
	byKey := make(map[string]Row, other.Len())
	for _, r := range other.rows {
		k, ok := r[on]
		if !ok {
			continue
		}
		if _, seen := byKey[k]; !seen {
			byKey[k] = r
		}
	}
	joined := make([]string, 0, len(other.cols))
	for _, c := range other.cols {
		if c != on {
			joined = append(joined, c)
		}
	}
	t.EnsureColumns(joined)
	for _, r := range t.rows {
		k, ok := r[on]
		if !ok {
			continue
		}
		src, ok := byKey[k]
		if !ok {
			continue
		}
		for _, c := range joined {
			if v, present := src[c]; present {
				r[c] = v
			}
		}
	}
	return nil
}

// SortByIntColumn orders rows ascending by the integer value of col.
// Rows whose cell is null or non-numeric sort last, keeping their relative
// order. The sort is stable so repeated runs produce identical row order.
func (t *Table) SortByIntColumn(col string) {
	sort.SliceStable(t.rows, func(i, j int) bool {
		a, aok := parseIntCell(t.rows[i], col)
		b, bok := parseIntCell(t.rows[j], col)
		if aok != bok {
			return aok
		}
		return a < b
	})
}

func parseIntCell(r Row, col string) (int, bool) {
	v, ok := r[col]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
