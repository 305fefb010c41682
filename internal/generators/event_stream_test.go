package generators

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var messagePattern = regexp.MustCompile(`^HTTP Status Code: (\d{3})$`)

func TestEventStream_Deterministic(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	a := NewEventStream(42, start)
	b := NewEventStream(42, start)

	for i := 0; i < 10_000; i++ {
		assert.Equal(t, a.Next(), b.Next(), "event %d diverged", i)
	}
}

func TestEventStream_DifferentSeedsDiverge(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	a := NewEventStream(1, start)
	b := NewEventStream(2, start)

	diverged := false
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			diverged = true
			break
		}
	}
	assert.True(t, diverged)
}

func TestEventStream_TimestampsStrictlyIncreasing(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	stream := NewEventStream(42, start)

	prev := float64(start.Unix())
	for i := 0; i < 10_000; i++ {
		event := stream.Next()
		assert.Greater(t, event.Timestamp, prev, "event %d", i)

		step := event.Timestamp - prev
		assert.GreaterOrEqual(t, step, 1.0, "event %d step too small", i)
		assert.LessOrEqual(t, step, 300.0, "event %d step too large", i)

		prev = event.Timestamp
	}
}

func TestEventStream_FieldDomains(t *testing.T) {
	t.Parallel()

	validServices := map[string]bool{
		"training": true, "evaluation": true, "inference": true, "monitoring": true,
	}
	validCodes := map[int]bool{
		200: true, 201: true, 202: true, 203: true,
		400: true, 401: true, 402: true, 403: true, 404: true,
		500: true,
	}

	stream := NewEventStream(7, time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))

	seenServices := map[string]bool{}
	seenCodes := map[int]bool{}
	for i := 0; i < 5_000; i++ {
		event := stream.Next()
		require.True(t, validServices[event.Service], "unexpected service %q", event.Service)
		seenServices[event.Service] = true

		match := messagePattern.FindStringSubmatch(event.Message)
		require.NotNil(t, match, "message %q does not match pattern", event.Message)
		code, err := strconv.Atoi(match[1])
		require.NoError(t, err)
		require.True(t, validCodes[code], "unexpected status code %d", code)
		seenCodes[code] = true
	}

	// With 5000 uniform draws every domain value shows up.
	assert.Len(t, seenServices, 4)
	assert.Len(t, seenCodes, 10)
}

func TestEventStream_NextBatchMatchesNext(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	batched := NewEventStream(42, start)
	single := NewEventStream(42, start)

	batch := batched.NextBatch(256)
	require.Len(t, batch, 256)
	for i, event := range batch {
		assert.Equal(t, single.Next(), event, "event %d", i)
	}
}
