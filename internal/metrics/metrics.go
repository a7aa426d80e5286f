package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DatasetsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "congreso_datasets_processed_total",
		Help: "Total number of datasets processed successfully.",
	})

	DatasetsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "congreso_datasets_failed_total",
		Help: "Total number of datasets that failed processing.",
	})

	DatasetsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "congreso_datasets_skipped_total",
		Help: "Total number of datasets skipped because outputs were up to date.",
	})

	MembersProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "congreso_members_processed_total",
		Help: "Total number of member profiles assembled.",
	})

	OrphanLabels = promauto.NewCounter(prometheus.CounterOpts{
		Name: "congreso_orphan_labels_total",
		Help: "Total number of career events whose category label is missing from the registry.",
	})

	DatasetDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "congreso_dataset_duration_seconds",
		Help:    "Per-dataset processing latency in seconds.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	})
)
