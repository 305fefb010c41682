package writers

import (
	"bytes"
	"context"
	"sync/atomic"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"

	"logbench/internal/models"
	"logbench/internal/shared/loggers"
	"logbench/internal/shared/metrics"
	"logbench/internal/shared/sinks"
)

// DefaultWidth is the historical write fan-out of the workload generator.
const DefaultWidth = 20

// EventSource yields batches of events. The batch writer pulls from it on a
// single goroutine, so implementations only need to be safe for sequential
// use.
//
//go:generate mockgen -source=batch_writer.go -destination=./mocks/batch_writer_mock.go -package=mocks
type EventSource interface {
	NextBatch(n int) []models.Event
}

// WriteReport summarizes one WriteAll call. Counts cover dispatched objects
// only: on cancellation, batches never handed to a worker appear in neither
// column.
type WriteReport struct {
	ObjectsWritten int
	WriteFailures  int
}

// Options tunes a BatchWriter.
type Options struct {
	Width    int  // worker pool size; DefaultWidth when <= 0
	Compress bool // gzip object payloads
}

// BatchWriter groups events into fixed-size batches and persists each batch
// as one object through the sink, fanning writes out across a bounded worker
// pool. A failed write is counted and logged but never cancels sibling
// writes; the whole fan-out is best effort.
type BatchWriter struct {
	sink     sinks.Sink
	width    int
	compress bool
}

func NewBatchWriter(sink sinks.Sink, opts Options) *BatchWriter {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	return &BatchWriter{sink: sink, width: width, compress: opts.Compress}
}

// WriteAll pulls objectCount batches of eventsPerObject events from source
// and writes each as one uniquely named object. Batches are pulled
// sequentially by the calling goroutine before dispatch, preserving the
// single total order of the underlying stream; workers perform encoding and
// I/O only. The call blocks until every dispatched write has completed or
// failed.
//
// On context cancellation outstanding writes abort and the partial report is
// returned together with the context error.
func (w *BatchWriter) WriteAll(ctx context.Context, source EventSource, objectCount, eventsPerObject int) (*WriteReport, error) {
	logger := loggers.Ctx(ctx)

	var written, failed atomic.Int64

	group := &errgroup.Group{}
	group.SetLimit(w.width)

	for i := 0; i < objectCount; i++ {
		if ctx.Err() != nil {
			break
		}

		batch := source.NextBatch(eventsPerObject)
		name := w.objectName()

		group.Go(func() error {
			payload, err := w.encode(batch)
			if err != nil {
				failed.Add(1)
				logger.Warn().Err(err).Str(loggers.FieldObjectName, name).Msg("batch encode failed")
				metricObjectsWrittenTotal.WithLabelValues(valueEncodeFailed).Inc()
				return nil
			}

			if err := w.sink.Write(ctx, name, payload); err != nil {
				failed.Add(1)
				logger.Warn().Err(err).Str(loggers.FieldObjectName, name).Msg("object write failed")
				metricObjectsWrittenTotal.WithLabelValues(valueWriteFailed).Inc()
				return nil
			}

			written.Add(1)
			logger.Debug().Str(loggers.FieldObjectName, name).Msg("object written")
			metricObjectsWrittenTotal.WithLabelValues(metrics.ValueNoError).Inc()
			return nil
		})
	}

	_ = group.Wait() // workers never return errors; failures are counted

	report := &WriteReport{
		ObjectsWritten: int(written.Load()),
		WriteFailures:  int(failed.Load()),
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

func (w *BatchWriter) objectName() string {
	if w.compress {
		return uuid.NewString() + ".json.gz"
	}
	return uuid.NewString() + ".json"
}

func (w *BatchWriter) encode(batch []models.Event) ([]byte, error) {
	payload, err := json.Marshal(batch)
	if err != nil {
		return nil, err
	}
	if !w.compress {
		return payload, nil
	}

	var buf bytes.Buffer
	gz, err := gzip.NewWriterLevel(&buf, gzip.BestSpeed)
	if err != nil {
		return nil, err
	}
	if _, err := gz.Write(payload); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
