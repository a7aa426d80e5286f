// Package profile implements the career-history unpivot engine: it takes the
// narrow, typed list of life-event rows per member and flattens it into a
// fixed-but-extensible set of wide columns, one group per event category,
// with stable per-category numbering.
package profile

import (
	"github.com/zigmaq/congreso-etl/internal/registry"
)

// Event is one career-history entry belonging to a member, as read from the
// events sheet. Fields holds the named text attributes (descripcion, detalle,
// periodo, optionally actividad); an absent key is a null value.
type Event struct {
	MemberID int
	RawLabel string
	Fields   map[string]string
}

// Field returns the named attribute, defaulting nulls to the empty string.
// Row-level missing values never propagate as errors.
func (e Event) Field(name string) string {
	return e.Fields[name]
}

// Partition filters events to one member, canonicalizes each raw category
// label and groups the surviving rows by canonical category key, preserving
// source row order. The result is total: every defined category maps to a
// (possibly empty) slice. Rows whose label canonicalizes to no defined
// category are tallied in orphans by raw label and contribute nothing.
func Partition(events []Event, memberID int, reg *registry.Registry) (map[string][]Event, map[string]int) {
	parts := make(map[string][]Event, len(Templates()))
	for _, tpl := range Templates() {
		parts[tpl.Key] = nil
	}
	var orphans map[string]int
	for _, ev := range events {
		if ev.MemberID != memberID {
			continue
		}
		key, _ := reg.Category(ev.RawLabel)
		if _, defined := parts[key]; !defined {
			if orphans == nil {
				orphans = make(map[string]int)
			}
			orphans[ev.RawLabel]++
			continue
		}
		parts[key] = append(parts[key], ev)
	}
	return parts, orphans
}
