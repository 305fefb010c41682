package aggregators

import (
	"logbench/internal/shared/metrics"
)

const valueDecodeFailed = "decode_failed"

var (
	// metricObjectsDecodedTotal counts fetched objects by decode outcome.
	// A corrupt object contributes zero records to the fold; it is counted
	// here and in the run report, and the run continues.
	metricObjectsDecodedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "objects_decoded_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricRunDurationSeconds observes the wall-clock duration of whole
	// aggregation runs, list through final fold.
	metricRunDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "run_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{},
	)
)
