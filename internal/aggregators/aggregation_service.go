package aggregators

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"logbench/internal/extractors"
	"logbench/internal/models"
	"logbench/internal/shared/loggers"
	"logbench/internal/shared/metrics"
	"logbench/internal/shared/svcerrors"
	"logbench/internal/sources"
)

// RunReport is the full outcome of one aggregation run: the RateResult plus
// the per-object failure counts that were swallowed at the object boundary.
type RunReport struct {
	Result *models.RateResult `json:"result"`

	ObjectsListed    int   `json:"objects_listed"`
	ObjectsFetched   int   `json:"objects_fetched"`
	ReadFailures     int   `json:"read_failures"`
	DecodeFailures   int   `json:"decode_failures"`
	RecordsExtracted int64 `json:"records_extracted"`

	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// Aggregate re-reads every object the source returns and folds the
	// extracted records into one RateResult. A RunReport is produced for
	// any run that reaches the fold step, even when everything failed and
	// the result is all zeros; only a failure to enumerate the scope
	// aborts.
	Aggregate(ctx context.Context) (*RunReport, *svcerrors.ServiceError)
}

type aggregationService struct {
	source    sources.ObjectSource
	extractor *extractors.RecordExtractor
}

func NewAggregationService(source sources.ObjectSource, extractor *extractors.RecordExtractor) AggregationService {
	return &aggregationService{source: source, extractor: extractor}
}

func (s *aggregationService) Aggregate(ctx context.Context) (*RunReport, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)
	start := time.Now()

	total := NewRateAccumulator()
	var mu sync.Mutex
	var decodeFailures, records atomic.Int64

	// Each worker folds its object into a private accumulator and merges
	// under the lock; counting and min/max merge associatively, so the
	// merge order across workers does not matter.
	fetchReport, err := s.source.FetchAll(ctx, func(name string, data []byte) {
		extracted, err := s.extractor.Extract(data)
		if err != nil {
			decodeFailures.Add(1)
			logger.Warn().Err(err).Str(loggers.FieldObjectName, name).Msg("object decode failed")
			metricObjectsDecodedTotal.WithLabelValues(valueDecodeFailed).Inc()
			return
		}
		metricObjectsDecodedTotal.WithLabelValues(metrics.ValueNoError).Inc()
		records.Add(int64(len(extracted)))

		partial := NewRateAccumulator()
		for _, record := range extracted {
			partial.Add(record)
		}

		mu.Lock()
		total.Merge(partial)
		mu.Unlock()
	})
	if err != nil && fetchReport == nil {
		return nil, errSinkEnumerationFailed(err)
	}

	elapsed := time.Since(start)
	metricRunDurationSeconds.WithLabelValues().Observe(elapsed.Seconds())

	report := &RunReport{
		Result:           total.Result(),
		ObjectsListed:    fetchReport.ObjectsListed,
		ObjectsFetched:   fetchReport.ObjectsFetched,
		ReadFailures:     fetchReport.ReadFailures,
		DecodeFailures:   int(decodeFailures.Load()),
		RecordsExtracted: records.Load(),
		ElapsedSeconds:   elapsed.Seconds(),
	}

	logger.Info().
		Int("objects_listed", report.ObjectsListed).
		Int("objects_fetched", report.ObjectsFetched).
		Int("read_failures", report.ReadFailures).
		Int("decode_failures", report.DecodeFailures).
		Int64("records_extracted", report.RecordsExtracted).
		Dur(loggers.FieldDuration, elapsed).
		Msg("aggregation run complete")

	// A cancelled fan-out still yields the partial report alongside the
	// error so the caller sees how far the run got.
	if err != nil {
		return report, errRunCancelled(err)
	}
	return report, nil
}
