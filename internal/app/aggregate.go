package app

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"logbench/internal/aggregators"
	"logbench/internal/extractors"
	"logbench/internal/ops"
	"logbench/internal/shared/configs"
	"logbench/internal/shared/loggers"
	"logbench/internal/shared/sinks"
	"logbench/internal/sources"
)

// AggregateOptions are the resolved inputs for one aggregation run.
type AggregateOptions struct {
	Scope string // s3://bucket/prefix or a local directory
	Width int
}

// RunAggregate re-reads every object in the scope and computes the log rate
// result. On cancellation the partial report is returned alongside the error.
func RunAggregate(ctx context.Context, cfg *configs.Config, opts AggregateOptions) (*aggregators.RunReport, error) {
	logger, err := loggers.New(cfg.Log.Level)
	if err != nil {
		return nil, errInvalidConfig(err)
	}
	logger = logger.With().
		Str(loggers.FieldApp, "lograte").
		Str(loggers.FieldRunID, ulid.Make().String()).
		Logger()
	ctx = logger.WithContext(ctx)

	if cfg.Ops.Addr != "" {
		opsServer := ops.NewServer(cfg.Ops.Addr, logger.With().Str(loggers.FieldComponent, "ops").Logger())
		opsServer.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			opsServer.Shutdown(shutdownCtx)
		}()
	}

	scope, err := sinks.ParseScope(opts.Scope)
	if err != nil {
		return nil, errInvalidScope(opts.Scope, err)
	}

	s3Opts := sinks.S3Options{
		PutTimeout: time.Duration(cfg.Sink.PutTimeout) * time.Second,
		PutRetries: cfg.Sink.PutRetries,
	}
	sink, err := sinks.Open(ctx, scope, s3Opts)
	if err != nil {
		return nil, errSinkUnavailable(scope.String(), err)
	}

	logger.Info().
		Str(loggers.FieldScope, scope.String()).
		Int("width", opts.Width).
		Msg("starting aggregation run")

	source := sources.NewObjectSource(sink, sources.Options{Width: opts.Width})
	service := aggregators.NewAggregationService(source, extractors.NewRecordExtractor())

	report, svcErr := service.Aggregate(ctx)
	if svcErr != nil {
		return report, svcErr
	}
	return report, nil
}
