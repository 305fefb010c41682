package writers_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"logbench/internal/generators"
	"logbench/internal/models"
	"logbench/internal/shared/sinks"
	sinkmocks "logbench/internal/shared/sinks/mocks"
	"logbench/internal/writers"
)

func newFileSink(t *testing.T) sinks.Sink {
	t.Helper()
	sink, err := sinks.NewFileSink(t.TempDir())
	require.NoError(t, err)
	return sink
}

func decodeObject(t *testing.T, name string, data []byte) []models.Event {
	t.Helper()
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(bytes.NewReader(data))
		require.NoError(t, err)
		data, err = io.ReadAll(gz)
		require.NoError(t, err)
	}
	var events []models.Event
	require.NoError(t, json.Unmarshal(data, &events))
	return events
}

func readAllEvents(t *testing.T, sink sinks.Sink) []models.Event {
	t.Helper()
	ctx := context.Background()
	names, err := sink.List(ctx)
	require.NoError(t, err)

	var all []models.Event
	for _, name := range names {
		data, err := sink.Read(ctx, name)
		require.NoError(t, err)
		all = append(all, decodeObject(t, name, data)...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Timestamp < all[j].Timestamp })
	return all
}

func TestBatchWriter_WritesAllObjects(t *testing.T) {
	t.Parallel()

	sink := newFileSink(t)
	writer := writers.NewBatchWriter(sink, writers.Options{Width: 4})

	start := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	stream := generators.NewEventStream(42, start)

	report, err := writer.WriteAll(context.Background(), stream, 10, 32)
	require.NoError(t, err)
	assert.Equal(t, 10, report.ObjectsWritten)
	assert.Equal(t, 0, report.WriteFailures)

	names, err := sink.List(context.Background())
	require.NoError(t, err)
	require.Len(t, names, 10)
	for _, name := range names {
		assert.True(t, strings.HasSuffix(name, ".json"), "name %q", name)

		data, err := sink.Read(context.Background(), name)
		require.NoError(t, err)
		events := decodeObject(t, name, data)
		assert.Len(t, events, 32)
	}
}

func TestBatchWriter_GzipRoundTrip(t *testing.T) {
	t.Parallel()

	sink := newFileSink(t)
	writer := writers.NewBatchWriter(sink, writers.Options{Width: 4, Compress: true})

	start := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	stream := generators.NewEventStream(42, start)

	report, err := writer.WriteAll(context.Background(), stream, 3, 16)
	require.NoError(t, err)
	assert.Equal(t, 3, report.ObjectsWritten)

	names, err := sink.List(context.Background())
	require.NoError(t, err)
	require.Len(t, names, 3)
	for _, name := range names {
		assert.True(t, strings.HasSuffix(name, ".json.gz"), "name %q", name)

		data, err := sink.Read(context.Background(), name)
		require.NoError(t, err)
		assert.Len(t, decodeObject(t, name, data), 16)
	}
}

func TestBatchWriter_DeterministicAcrossRuns(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	sinkA := newFileSink(t)
	sinkB := newFileSink(t)

	_, err := writers.NewBatchWriter(sinkA, writers.Options{Width: 8}).
		WriteAll(context.Background(), generators.NewEventStream(42, start), 6, 64)
	require.NoError(t, err)

	_, err = writers.NewBatchWriter(sinkB, writers.Options{Width: 2}).
		WriteAll(context.Background(), generators.NewEventStream(42, start), 6, 64)
	require.NoError(t, err)

	// Pool width changes scheduling, never content.
	assert.Equal(t, readAllEvents(t, sinkA), readAllEvents(t, sinkB))
}

func TestBatchWriter_CountsFailuresWithoutCancellingSiblings(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSink := sinkmocks.NewMockSink(ctrl)

	var calls atomic.Int64
	mockSink.EXPECT().
		Write(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(10).
		DoAndReturn(func(ctx context.Context, name string, data []byte) error {
			if calls.Add(1) <= 4 {
				return errors.New("sink write failed")
			}
			return nil
		})

	writer := writers.NewBatchWriter(mockSink, writers.Options{Width: 1})
	stream := generators.NewEventStream(42, time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))

	report, err := writer.WriteAll(context.Background(), stream, 10, 8)
	require.NoError(t, err)
	assert.Equal(t, 6, report.ObjectsWritten)
	assert.Equal(t, 4, report.WriteFailures)
}

func TestBatchWriter_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSink := sinkmocks.NewMockSink(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	writer := writers.NewBatchWriter(mockSink, writers.Options{Width: 4})
	stream := generators.NewEventStream(42, time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))

	report, err := writer.WriteAll(ctx, stream, 100, 8)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, report.ObjectsWritten)
}
