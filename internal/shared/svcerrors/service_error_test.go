package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceError_ErrorAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := NewUnavailableError("SNK_2000", "sink unreachable", cause)

	assert.Equal(t, "SNK_2000: sink unreachable", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestAsServiceError_WrappedChain(t *testing.T) {
	t.Parallel()

	inner := NewInvalidArgumentError("SNK_1000", "unsupported scheme", nil)
	wrapped := fmt.Errorf("opening scope: %w", inner)

	svcErr, ok := AsServiceError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "SNK_1000", svcErr.Code)
	assert.Equal(t, "invalid_argument", svcErr.Category)
	assert.Equal(t, 2, svcErr.ExitCode)
}

func TestAsServiceError_PlainError(t *testing.T) {
	t.Parallel()

	svcErr, ok := AsServiceError(errors.New("plain"))
	assert.False(t, ok)
	assert.Nil(t, svcErr)
}

func TestNewInternalError_Categories(t *testing.T) {
	t.Parallel()

	internal := NewInternalErrorUndefined(errors.New("boom"))
	assert.True(t, internal.IsInternalError())
	assert.Equal(t, "SYS_9001", internal.Code)

	panicErr := NewInternalErrorPanic(errors.New("boom"))
	assert.Equal(t, "SYS_9000", panicErr.Code)

	arg := NewInvalidArgumentError("CFG_1000", "bad", nil)
	assert.False(t, arg.IsInternalError())
}
