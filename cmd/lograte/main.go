package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"logbench/internal/aggregators"
	"logbench/internal/app"
	"logbench/internal/shared/configs"
	"logbench/internal/shared/svcerrors"
)

func main() {
	var (
		configPath  string
		width       int
		asJSON      bool
		metricsAddr string
	)

	defaults := configs.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "lograte <scope>",
		Short: "Compute log throughput and status-class rates over a stored dataset",
		Long: "lograte re-reads every object in the scope (s3://bucket/prefix or a\n" +
			"local directory), extracts HTTP status codes from the log messages and\n" +
			"prints the overall logs/second plus 2xx/4xx/5xx rates.",
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

			if !cmd.Flags().Changed("width") {
				width = cfg.Aggregator.Width
			}
			if metricsAddr != "" {
				cfg.Ops.Addr = metricsAddr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			report, err := app.RunAggregate(ctx, cfg, app.AggregateOptions{
				Scope: args[0],
				Width: width,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(report)
			}
			printReport(report)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file")
	cmd.Flags().IntVar(&width, "width", defaults.Aggregator.Width, "concurrent fetch workers")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full run report as JSON")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "address for the optional /metrics listener")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lograte:", err)
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			os.Exit(svcErr.ExitCode)
		}
		os.Exit(1)
	}
}

func printReport(report *aggregators.RunReport) {
	fmt.Println("\n--- RESULTS ---")
	fmt.Printf("Overall Log Rate: %.4f logs/second\n", report.Result.LogsPerSecond)
	fmt.Printf("2xx Success Rate: %.2f%%\n", report.Result.Rate2xx*100)
	fmt.Printf("4xx Client Error Rate: %.2f%%\n", report.Result.Rate4xx*100)
	fmt.Printf("5xx Server Error Rate: %.2f%%\n", report.Result.Rate5xx*100)
	fmt.Printf("Execution Time (Wall Clock): %.4f seconds\n", report.ElapsedSeconds)
	fmt.Println("---------------")
}
