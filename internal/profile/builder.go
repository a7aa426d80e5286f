package profile

import (
	"context"
	"fmt"
	"sort"

	"github.com/zigmaq/congreso-etl/internal/registry"
	"github.com/zigmaq/congreso-etl/internal/table"
)

// Stats reports what the builder saw during one run.
type Stats struct {
	Members int
	Events  int
	// Orphans counts events whose raw category label mapped to no defined
	// category, keyed by raw label.
	Orphans map[string]int
}

// Builder assembles per-member profiles into one wide table. Assembly is
// fanned out over a worker pool: each member's computation reads only that
// member's event slice and writes only its own record, so the workers share
// no mutable state. The schema-union step is a single-threaded reduction
// over the completed records.
type Builder struct {
	reg     *registry.Registry
	workers int
}

// NewBuilder creates a Builder running at most workers assemblies in parallel.
func NewBuilder(reg *registry.Registry, workers int) *Builder {
	if workers < 1 {
		workers = 1
	}
	return &Builder{reg: reg, workers: workers}
}

type memberWork struct {
	id     int
	events []Event
}

type memberResult struct {
	rec     *Record
	orphans map[string]int
}

// Build partitions and assembles every member appearing in events, in
// ascending member-id order, and stacks the flat records into a table.
// Absent fields stay null at the table level. Given identical input the
// output is identical: column set, column order, row order and cell values.
func (b *Builder) Build(ctx context.Context, events []Event) (*table.Table, *Stats, error) {
	byMember := make(map[int][]Event)
	var ids []int
	for _, ev := range events {
		if _, seen := byMember[ev.MemberID]; !seen {
			ids = append(ids, ev.MemberID)
		}
		byMember[ev.MemberID] = append(byMember[ev.MemberID], ev)
	}
	sort.Ints(ids)

	pool := newWorkerPool(ctx, b.workers, len(ids), func(ctx context.Context, w memberWork) (memberResult, error) {
		parts, orphans := Partition(w.events, w.id, b.reg)
		return memberResult{rec: Assemble(w.id, parts), orphans: orphans}, nil
	})
	for i, id := range ids {
		if !pool.submit(i, memberWork{id: id, events: byMember[id]}) {
			return nil, nil, fmt.Errorf("build profiles: queue full at member %d", id)
		}
	}
	pool.drain()

	recs := make([]*Record, len(ids))
	stats := &Stats{Members: len(ids), Events: len(events), Orphans: make(map[string]int)}
	for res := range pool.results {
		if res.err != nil {
			return nil, nil, res.err
		}
		recs[res.idx] = res.value.rec
		for label, n := range res.value.orphans {
			stats.Orphans[label] += n
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("build profiles: %w", err)
	}

	t := table.New("dip_id")
	for _, rec := range recs {
		if rec == nil {
			return nil, nil, fmt.Errorf("build profiles: worker context cancelled before completion")
		}
		t.Append(rec.Keys, table.Row(rec.Cells))
	}
	return t, stats, nil
}
