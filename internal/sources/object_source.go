package sources

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync/atomic"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"

	"logbench/internal/shared/loggers"
	"logbench/internal/shared/metrics"
	"logbench/internal/shared/sinks"
)

// DefaultWidth is the default fetch fan-out.
const DefaultWidth = 20

// FetchReport summarizes one enumeration pass over a sink scope.
type FetchReport struct {
	ObjectsListed  int
	ObjectsFetched int
	ReadFailures   int
}

// ObjectSource lists and fetches previously written objects from a sink.
// Objects that cannot be fetched are skipped and counted, never fatal; only
// a failure to enumerate the scope at all aborts the run.
//
//go:generate mockgen -source=object_source.go -destination=./mocks/object_source_mock.go -package=mocks
type ObjectSource interface {
	// FetchAll enumerates the sink scope and invokes handle with each
	// object's raw bytes. Objects are fetched concurrently across a bounded
	// worker pool, so handle must be safe for concurrent calls. Gzipped
	// objects (".gz" suffix) are decompressed before handle sees them.
	FetchAll(ctx context.Context, handle func(name string, data []byte)) (*FetchReport, error)
}

// Options tunes an ObjectSource.
type Options struct {
	Width int // fetch worker pool size; DefaultWidth when <= 0
}

type objectSource struct {
	sink  sinks.Sink
	width int
}

func NewObjectSource(sink sinks.Sink, opts Options) ObjectSource {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	return &objectSource{sink: sink, width: width}
}

func (s *objectSource) FetchAll(ctx context.Context, handle func(name string, data []byte)) (*FetchReport, error) {
	logger := loggers.Ctx(ctx)

	names, err := s.sink.List(ctx)
	if err != nil {
		return nil, err
	}

	var fetched, failed atomic.Int64

	group := &errgroup.Group{}
	group.SetLimit(s.width)

	for _, name := range names {
		if ctx.Err() != nil {
			break
		}

		group.Go(func() error {
			data, err := s.sink.Read(ctx, name)
			if err != nil {
				failed.Add(1)
				logger.Warn().Err(err).Str(loggers.FieldObjectName, name).Msg("object read failed")
				metricObjectsFetchedTotal.WithLabelValues(valueReadFailed).Inc()
				return nil
			}

			if strings.HasSuffix(name, ".gz") {
				data, err = decompress(data)
				if err != nil {
					failed.Add(1)
					logger.Warn().Err(err).Str(loggers.FieldObjectName, name).Msg("object decompress failed")
					metricObjectsFetchedTotal.WithLabelValues(valueDecompressFailed).Inc()
					return nil
				}
			}

			fetched.Add(1)
			metricObjectsFetchedTotal.WithLabelValues(metrics.ValueNoError).Inc()
			handle(name, data)
			return nil
		})
	}

	_ = group.Wait() // workers never return errors; failures are counted

	report := &FetchReport{
		ObjectsListed:  len(names),
		ObjectsFetched: int(fetched.Load()),
		ReadFailures:   int(failed.Load()),
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

func decompress(data []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gz.Close()
	return io.ReadAll(gz)
}
