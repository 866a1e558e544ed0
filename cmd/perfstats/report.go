package main

import (
	"context"

	"perf-analytics/internal/app"

	"github.com/spf13/cobra"
)

func newReportCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Inspect saved histogram reports (needs file_storage.root_dir)",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list <job>",
			Short: "List the saved runs of a job, oldest first",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, opts, func(ctx context.Context, application *app.App) error {
					return application.ListReports(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "show <job> <run-id>...",
			Short: "Render a saved report; several run IDs are merged into one histogram",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, opts, func(ctx context.Context, application *app.App) error {
					return application.ShowReport(ctx, args[0], args[1:]...)
				})
			},
		},
	)
	return cmd
}
