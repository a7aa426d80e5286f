package profile

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one member's flat wide-table row. Keys preserves insertion order
// so the schema union over all members is deterministic; Cells is sparse and
// never holds nulls (a missing key is the null).
type Record struct {
	Keys  []string
	Cells map[string]string
}

func newRecord() *Record {
	return &Record{Cells: make(map[string]string)}
}

func (r *Record) set(key, value string) {
	if _, dup := r.Cells[key]; !dup {
		r.Keys = append(r.Keys, key)
	}
	r.Cells[key] = value
}

// Unpivot flattens one category partition into the category's named scalar
// fields: the presence flag (when the template defines one) followed by the
// numbered detail columns, indices assigned 1-based in partition order.
// Missing attribute values become "" inside detail columns; the table-level
// null for members with no rows at all in a category arises from the columns
// simply not being emitted here.
func Unpivot(tpl Template, events []Event) *Record {
	rec := newRecord()
	if tpl.Flag != "" {
		rec.set(tpl.Flag, flagValue(tpl, events))
	}
	for i, ev := range events {
		n := strconv.Itoa(i + 1)
		for _, p := range tpl.Projections {
			rec.set(p.Column+"_"+n, ev.Field(p.Source))
		}
		if tpl.Concat != nil {
			parts := make([]string, len(tpl.Concat.Sources))
			for j, s := range tpl.Concat.Sources {
				parts[j] = ev.Field(s)
			}
			rec.set(tpl.Concat.Column+"_"+n, strings.Join(parts, ","))
		}
	}
	return rec
}

func flagValue(tpl Template, events []Event) string {
	if len(events) == 0 {
		return "0"
	}
	if tpl.Predicate == nil {
		return "1"
	}
	for _, ev := range events {
		if v, ok := ev.Fields[tpl.Predicate.Column]; ok && v == tpl.Predicate.Equals {
			return "1"
		}
	}
	return "0"
}

// Assemble runs every category template against the member's partition and
// merges the results, plus the member id, into one flat record. Key
// collisions are impossible by construction: every template owns a disjoint
// set of column names.
func Assemble(memberID int, parts map[string][]Event) *Record {
	rec := newRecord()
	rec.set("dip_id", fmt.Sprintf("%d", memberID))
	for _, tpl := range Templates() {
		cat := Unpivot(tpl, parts[tpl.Key])
		for _, k := range cat.Keys {
			rec.set(k, cat.Cells[k])
		}
	}
	return rec
}
