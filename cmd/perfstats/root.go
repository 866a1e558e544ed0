package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"perf-analytics/internal/app"
	"perf-analytics/internal/shared/configs"
	"perf-analytics/internal/shared/svcerrors"

	"github.com/spf13/cobra"
)

const (
	defaultConfigPath      = "./configs/configs.yml"
	defaultShutdownTimeout = 5 * time.Second

	codeInvalidArgumentConfig = "CLI_1000"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "perfstats",
		Short: "Performance histograms and audit task queue for front-end monitoring data",
		Long: `perfstats reads real-user timing beacons and lighthouse reports from MongoDB,
splits them by device mode and prints bucketed histograms. It also fills the
audit task queue from page views.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigPath, "config file; empty means defaults and PERFSTATS_* environment only")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level")

	root.AddCommand(
		newAggregateCommand(opts, "fmp", "Histogram of first meaningful paint from after-onload beacons"),
		newAggregateCommand(opts, "timing", "Histograms of time to interactive and first contentful paint"),
		newAggregateCommand(opts, "audits", "Histograms of lighthouse audit values from finished tasks"),
		newTasksCommand(opts),
		newReportCommand(opts),
		newVersionCommand(),
	)
	return root
}

// withApp loads configuration, builds the App, runs fn and always shuts the App down.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, application *app.App) error) error {
	cfg, err := configs.LoadConfig(opts.configPath)
	if err != nil {
		return svcerrors.NewInvalidArgumentError(codeInvalidArgumentConfig, "invalid configuration", err)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	application, err := app.New(cfg, cmd.OutOrStdout())
	if err != nil {
		return svcerrors.NewInvalidArgumentError(codeInvalidArgumentConfig, "invalid configuration", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := fn(ctx, application)

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := application.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
