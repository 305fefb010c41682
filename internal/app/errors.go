package app

import (
	"fmt"

	"logbench/internal/shared/svcerrors"
)

const (
	codeInvalidConfig   = "APP_1000"
	codeInvalidScope    = "APP_1001"
	codeUnknownWorkload = "APP_1002"
	codeSinkUnavailable = "APP_2000"
)

func errInvalidConfig(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidConfig, "invalid configuration", cause)
}

func errInvalidScope(scope string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidScope, fmt.Sprintf("invalid scope %q", scope), cause)
}

func errUnknownWorkload(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownWorkload, "unknown workload size", cause)
}

func errSinkUnavailable(scope string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeSinkUnavailable, fmt.Sprintf("sink %q unavailable", scope), cause)
}
