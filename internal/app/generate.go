package app

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"logbench/internal/generators"
	"logbench/internal/models"
	"logbench/internal/ops"
	"logbench/internal/shared/configs"
	"logbench/internal/shared/loggers"
	"logbench/internal/shared/sinks"
	"logbench/internal/writers"
)

// GenerateOptions are the resolved inputs for one generation run: the target
// scope plus the flag/config knobs, already merged by the CLI layer.
type GenerateOptions struct {
	Target   string // local directory or bucket name
	Remote   bool   // treat Target as an S3 bucket
	Size     string // single workload name; empty runs the full catalog
	Seed     int64
	Width    int
	Compress bool
}

// GenerateSummary totals the reports of every workload in the run.
type GenerateSummary struct {
	Workloads      int
	ObjectsWritten int
	WriteFailures  int
}

// RunGenerate writes one or all catalog workloads into the target scope, each
// workload under its own sub-scope named after the size. Per-object write
// failures are counted in the summary but never fail the run; only an
// unusable target or a cancelled context does.
func RunGenerate(ctx context.Context, cfg *configs.Config, opts GenerateOptions) (*GenerateSummary, error) {
	logger, err := loggers.New(cfg.Log.Level)
	if err != nil {
		return nil, errInvalidConfig(err)
	}
	logger = logger.With().
		Str(loggers.FieldApp, "loggen").
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

	workloads := models.AllWorkloads()
	if opts.Size != "" {
		workload, err := models.WorkloadByName(opts.Size)
		if err != nil {
			return nil, errUnknownWorkload(err)
		}
		workloads = []models.Workload{workload}
	}

	baseScope := sinks.Scope{Dir: opts.Target}
	if opts.Remote {
		baseScope = sinks.Scope{Remote: true, Bucket: opts.Target}
	}

	s3Opts := sinks.S3Options{
		PutTimeout: time.Duration(cfg.Sink.PutTimeout) * time.Second,
		PutRetries: cfg.Sink.PutRetries,
	}

	summary := &GenerateSummary{}
	for _, workload := range workloads {
		scope := baseScope.Sub(workload.Name)

		sink, err := sinks.Open(ctx, scope, s3Opts)
		if err != nil {
			return summary, errSinkUnavailable(scope.String(), err)
		}

		workloadLogger := logger.With().
			Str(loggers.FieldWorkload, workload.Name).
			Str(loggers.FieldScope, scope.String()).
			Logger()
		workloadCtx := workloadLogger.WithContext(ctx)

		workloadLogger.Info().
			Int("objects", workload.ObjectCount).
			Int("events_per_object", workload.EventsPerObject).
			Int64("seed", opts.Seed).
			Int("width", opts.Width).
			Msg("generating workload")

		// Each workload gets a fresh stream so its event sequence depends
		// only on the seed, not on how many workloads ran before it.
		stream := generators.NewEventStream(opts.Seed, time.Now())
		writer := writers.NewBatchWriter(sink, writers.Options{Width: opts.Width, Compress: opts.Compress})

		start := time.Now()
		report, err := writer.WriteAll(workloadCtx, stream, workload.ObjectCount, workload.EventsPerObject)

		summary.Workloads++
		summary.ObjectsWritten += report.ObjectsWritten
		summary.WriteFailures += report.WriteFailures

		if err != nil {
			workloadLogger.Warn().
				Int("written", report.ObjectsWritten).
				Int("failed", report.WriteFailures).
				Msg("workload interrupted")
			return summary, err
		}

		workloadLogger.Info().
			Int("written", report.ObjectsWritten).
			Int("failed", report.WriteFailures).
			Dur(loggers.FieldDuration, time.Since(start)).
			Msg("workload complete")
	}

	logger.Info().
		Int("workloads", summary.Workloads).
		Int("objects_written", summary.ObjectsWritten).
		Int("write_failures", summary.WriteFailures).
		Msg("generation run complete")

	return summary, nil
}
