package writers

import (
	"logbench/internal/shared/metrics"
)

const (
	valueEncodeFailed = "encode_failed"
	valueWriteFailed  = "write_failed"
)

// metricObjectsWrittenTotal counts dispatched batch objects by outcome.
//
// The error_code label is empty for successful writes, "encode_failed" when
// the batch could not be serialized and "write_failed" when the sink
// rejected the object after the write retry budget was exhausted.
var metricObjectsWrittenTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubGeneration,
		Name:      "objects_written_total",
	},
	[]string{metrics.FieldErrorCode},
)
