package sinks

import (
	"logbench/internal/shared/metrics"
)

// metricPutRetriesTotal counts retried S3 put attempts. A healthy run sits at
// zero; sustained growth means the bucket is throttling or flaky and the
// retry budget is doing real work.
var metricPutRetriesTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubSink,
		Name:      "put_retries_total",
	},
	[]string{},
)
