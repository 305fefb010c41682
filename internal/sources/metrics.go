package sources

import (
	"logbench/internal/shared/metrics"
)

const (
	valueReadFailed       = "read_failed"
	valueDecompressFailed = "decompress_failed"
)

// metricObjectsFetchedTotal counts fetch attempts by outcome. Read and
// decompress failures are per-object and non-fatal; the run continues past
// them with the failure surfaced in the fetch report.
var metricObjectsFetchedTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubAggregation,
		Name:      "objects_fetched_total",
	},
	[]string{metrics.FieldErrorCode},
)
