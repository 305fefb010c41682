package aggregators

import (
	"fmt"

	"logbench/internal/shared/svcerrors"
)

const (
	codeSinkEnumerationFailed = "AGG_2000"
	codeRunCancelled          = "AGG_2001"
)

// errSinkEnumerationFailed covers a failure to list the sink scope at all.
// Unlike per-object failures this is fatal: with no listing there is nothing
// to aggregate over.
func errSinkEnumerationFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeSinkEnumerationFailed, "failed to enumerate sink scope", fmt.Errorf("sinkEnumerationFailed: %w", cause))
}

// errRunCancelled covers a context cancellation mid fan-out.
func errRunCancelled(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeRunCancelled, "aggregation run cancelled", fmt.Errorf("runCancelled: %w", cause))
}
