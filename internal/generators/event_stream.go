package generators

import (
	"fmt"
	"math/rand"
	"time"

	"logbench/internal/models"
)

var services = []string{"training", "evaluation", "inference", "monitoring"}

var statusCodes = []int{200, 201, 202, 203, 400, 401, 402, 403, 404, 500}

const (
	minStepSeconds = 1
	maxStepSeconds = 300
)

// EventStream is a deterministic, seedable generator of synthetic log
// events. Two streams built with the same seed and start time yield
// byte-identical event sequences when pulled the same number of times.
//
// The running clock advances by a uniform random whole number of seconds in
// [1, 300] per event, so timestamps within one stream are strictly
// increasing.
//
// An EventStream is NOT safe for concurrent use. The write path enforces a
// single-producer discipline: one goroutine drains the stream batch by batch
// and hands finished batches to I/O workers. Sharing a stream across
// unsynchronized pullers would scramble the random sequence and silently
// break both determinism and timestamp ordering.
type EventStream struct {
	rng   *rand.Rand
	clock float64
}

// NewEventStream creates a stream seeded with seed whose clock starts at
// start. The start time is a parameter rather than time.Now so tests can pin
// the full byte output.
func NewEventStream(seed int64, start time.Time) *EventStream {
	return &EventStream{
		rng:   rand.New(rand.NewSource(seed)),
		clock: float64(start.UnixNano()) / float64(time.Second),
	}
}

// Next returns the next event and advances the stream.
func (s *EventStream) Next() models.Event {
	// Draw order is part of the determinism contract: status, step, service.
	code := statusCodes[s.rng.Intn(len(statusCodes))]
	s.clock += float64(s.rng.Intn(maxStepSeconds-minStepSeconds+1) + minStepSeconds)
	service := services[s.rng.Intn(len(services))]

	return models.Event{
		Service:   service,
		Timestamp: s.clock,
		Message:   fmt.Sprintf("HTTP Status Code: %03d", code),
	}
}

// NextBatch pulls n consecutive events into a freshly allocated slice.
func (s *EventStream) NextBatch(n int) []models.Event {
	batch := make([]models.Event, n)
	for i := range batch {
		batch[i] = s.Next()
	}
	return batch
}
