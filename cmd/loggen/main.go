package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"logbench/internal/app"
	"logbench/internal/models"
	"logbench/internal/shared/configs"
	"logbench/internal/shared/svcerrors"
)

func main() {
	var (
		configPath  string
		remote      bool
		size        string
		seed        int64
		width       int
		compress    bool
		metricsAddr string
	)

	defaults := configs.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "loggen <dir-or-bucket>",
		Short: "Generate synthetic log datasets into a local directory or S3 bucket",
		Long: "loggen writes the fixed catalog of workload sizes (" + models.WorkloadNames() + ")\n" +
			"into the target scope, one sub-scope per size. Event sequences are\n" +
			"deterministic for a given seed.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaults
			if configPath != "" {
				loaded, err := configs.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// Flags win over config only when set explicitly.
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Generator.Seed
			}
			if !cmd.Flags().Changed("width") {
				width = cfg.Generator.Width
			}
			if !cmd.Flags().Changed("gzip") {
				compress = cfg.Generator.Compress
			}
			if metricsAddr != "" {
				cfg.Ops.Addr = metricsAddr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			summary, err := app.RunGenerate(ctx, cfg, app.GenerateOptions{
				Target:   args[0],
				Remote:   remote,
				Size:     size,
				Seed:     seed,
				Width:    width,
				Compress: compress,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Wrote %d objects across %d workload(s), %d failure(s)\n",
				summary.ObjectsWritten, summary.Workloads, summary.WriteFailures)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file")
	cmd.Flags().BoolVar(&remote, "remote", false, "treat the target as an S3 bucket name")
	cmd.Flags().StringVar(&size, "size", "", "generate a single workload size ("+models.WorkloadNames()+")")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Generator.Seed, "random seed for the event stream")
	cmd.Flags().IntVar(&width, "width", defaults.Generator.Width, "concurrent write workers")
	cmd.Flags().BoolVar(&compress, "gzip", false, "gzip object payloads")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "address for the optional /metrics listener")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "loggen:", err)
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			os.Exit(svcErr.ExitCode)
		}
		os.Exit(1)
	}
}
