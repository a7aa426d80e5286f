// Package pipeline runs the per-dataset processing: load the three sheets,
// clean the roster, pivot committees, unpivot career events into wide member
// profiles, merge everything on dip_id, order the columns and write the
// outputs.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/zigmaq/congreso-etl/internal/columns"
	"github.com/zigmaq/congreso-etl/internal/metrics"
	"github.com/zigmaq/congreso-etl/internal/profile"
	"github.com/zigmaq/congreso-etl/internal/registry"
	"github.com/zigmaq/congreso-etl/internal/sheets"
	"github.com/zigmaq/congreso-etl/internal/sink"
	"github.com/zigmaq/congreso-etl/internal/table"
)

// Sheet file names expected inside a dataset directory.
const (
	MembersFile    = "sheet1.csv"
	CommitteesFile = "sheet2.csv"
	CareerFile     = "sheet3.csv"
)

// Dataset is one directory of input sheets.
type Dataset struct {
	Name string
	Dir  string
}

// Result summarizes one processed dataset.
type Result struct {
	Members int
	Columns int
	Orphans map[string]int
	Outputs []string
}

// Pipeline holds the pieces shared across datasets.
type Pipeline struct {
	reg       *registry.Registry
	builder   *profile.Builder
	outputDir string
	formats   []string
}

func New(reg *registry.Registry, workers int, outputDir string, formats []string) *Pipeline {
	return &Pipeline{
		reg:       reg,
		builder:   profile.NewBuilder(reg, workers),
		outputDir: outputDir,
		formats:   formats,
	}
}

// Run processes a single dataset end to end.
func (p *Pipeline) Run(ctx context.Context, ds Dataset) (*Result, error) {
	members, err := table.ReadCSV(filepath.Join(ds.Dir, MembersFile))
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", ds.Name, err)
	}
	committees, err := table.ReadCSV(filepath.Join(ds.Dir, CommitteesFile))
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", ds.Name, err)
	}
	career, err := table.ReadCSV(filepath.Join(ds.Dir, CareerFile))
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", ds.Name, err)
	}

	// Structural check before touching any row: every column the category
	// templates project must exist in the career sheet header.
	if err := profile.ValidateTemplates(career.Columns()); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", ds.Name, err)
	}

	sheets.CleanMembers(members, p.reg)
	wideCommittees := sheets.PivotCommittees(committees, p.reg)

	events, dropped := parseEvents(career)
	if dropped > 0 {
		slog.Warn("career rows without member id dropped", "dataset", ds.Name, "rows", dropped)
	}
	profiles, stats, err := p.builder.Build(ctx, events)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", ds.Name, err)
	}
	for label, n := range stats.Orphans {
		slog.Warn("unmapped category label", "dataset", ds.Name, "label", label, "events", n)
		metrics.OrphanLabels.Add(float64(n))
	}
	metrics.MembersProcessed.Add(float64(stats.Members))

	if err := members.LeftJoin(wideCommittees, "dip_id"); err != nil {
		return nil, fmt.Errorf("dataset %s: join committees: %w", ds.Name, err)
	}
	if err := members.LeftJoin(profiles, "dip_id"); err != nil {
		return nil, fmt.Errorf("dataset %s: join profiles: %w", ds.Name, err)
	}
	members.SortByIntColumn("dip_id")
	ordered := columns.Order(members.Columns(), columns.DefaultGroups())

	res := &Result{
		Members: members.Len(),
		Columns: len(ordered),
		Orphans: stats.Orphans,
	}
	for _, format := range p.formats {
		out := filepath.Join(p.outputDir, ds.Name+"_processed."+format)
		switch format {
		case "csv":
			err = sink.WriteCSV(out, ordered, members)
		case "sqlite":
			err = sink.WriteSQLite(out, ordered, members)
		default:
			err = fmt.Errorf("unknown output format %q", format)
		}
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", ds.Name, err)
		}
		res.Outputs = append(res.Outputs, out)
	}
	slog.Info("dataset processed",
		"dataset", ds.Name, "members", res.Members, "columns", res.Columns,
		"orphan_labels", len(res.Orphans))
	return res, nil
}

// parseEvents turns career-sheet rows into events. Rows without a parseable
// dip_id are counted and dropped.
func parseEvents(t *table.Table) (events []profile.Event, dropped int) {
	for _, row := range t.Rows() {
		id, err := strconv.Atoi(row["dip_id"])
		if err != nil {
			dropped++
			continue
		}
		fields := make(map[string]string, len(row))
		for k, v := range row {
			if k == "dip_id" || k == "tipo" {
				continue
			}
			fields[k] = v
		}
		events = append(events, profile.Event{
			MemberID: id,
			RawLabel: row["tipo"],
			Fields:   fields,
		})
	}
	return events, dropped
}
