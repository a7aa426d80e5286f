package batch

import (
	"context"
	"log/slog"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/google/uuid"

	"github.com/zigmaq/congreso-etl/internal/metrics"
	"github.com/zigmaq/congreso-etl/internal/pipeline"
)

// Outcome is the per-dataset line of a run summary.
type Outcome struct {
	Dataset  string
	Status   string // ok, failed, skipped
	Members  int
	Duration time.Duration
	Err      error
}

// Summary describes one batch run.
type Summary struct {
	RunID     string
	Processed int
	Failed    int
	Skipped   int
	Duration  time.Duration
	P50       time.Duration
	P95       time.Duration
	Max       time.Duration
	Outcomes  []Outcome
}

// Runner executes the pipeline over every dataset under a root directory.
type Runner struct {
	pipe      *pipeline.Pipeline
	outputDir string
	formats   []string
	reprocess bool
}

func NewRunner(pipe *pipeline.Pipeline, outputDir string, formats []string, reprocess bool) *Runner {
	return &Runner{pipe: pipe, outputDir: outputDir, formats: formats, reprocess: reprocess}
}

// Run scans root and processes every dataset found, honoring the
// skip-up-to-date check unless reprocessing is forced. Dataset failures do
// not abort the batch; a context cancellation does.
func (r *Runner) Run(ctx context.Context, root string) (*Summary, error) {
	datasets, err := FindDatasets(root)
	if err != nil {
		return nil, err
	}
	sum := &Summary{RunID: uuid.New().String()}
	hist := hdrhistogram.New(1, int64(time.Hour/time.Microsecond), 3)
	start := time.Now()

	for _, ds := range datasets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !r.reprocess && upToDate(ds, r.outputDir, r.formats) {
			sum.Skipped++
			sum.Outcomes = append(sum.Outcomes, Outcome{Dataset: ds.Name, Status: "skipped"})
			metrics.DatasetsSkipped.Inc()
			slog.Info("dataset up to date, skipping", "dataset", ds.Name)
			continue
		}
		dsStart := time.Now()
		res, err := r.pipe.Run(ctx, ds)
		elapsed := time.Since(dsStart)
		hist.RecordValue(elapsed.Microseconds())
		metrics.DatasetDuration.Observe(elapsed.Seconds())
		if err != nil {
			sum.Failed++
			sum.Outcomes = append(sum.Outcomes, Outcome{Dataset: ds.Name, Status: "failed", Duration: elapsed, Err: err})
			metrics.DatasetsFailed.Inc()
			slog.Error("dataset failed", "dataset", ds.Name, "error", err)
			continue
		}
		sum.Processed++
		sum.Outcomes = append(sum.Outcomes, Outcome{Dataset: ds.Name, Status: "ok", Members: res.Members, Duration: elapsed})
		metrics.DatasetsProcessed.Inc()
	}

	sum.Duration = time.Since(start)
	if sum.Processed+sum.Failed > 0 {
		sum.P50 = time.Duration(hist.ValueAtQuantile(50)) * time.Microsecond
		sum.P95 = time.Duration(hist.ValueAtQuantile(95)) * time.Microsecond
		sum.Max = time.Duration(hist.Max()) * time.Microsecond
	}
	slog.Info("batch finished",
		"run_id", sum.RunID,
		"processed", sum.Processed, "failed", sum.Failed, "skipped", sum.Skipped,
		"duration", sum.Duration,
		"p50", sum.P50, "p95", sum.P95, "max", sum.Max)
	return sum, nil
}
