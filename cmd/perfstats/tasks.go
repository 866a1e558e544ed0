package main

import (
	"context"

	"perf-analytics/internal/app"

	"github.com/spf13/cobra"
)

func newTasksCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage the lighthouse audit task queue",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "populate",
			Short: "Queue one audit task per distinct page and device mode seen in page views",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, opts, func(ctx context.Context, application *app.App) error {
					return application.PopulateTasks(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Count unfinished and finished audit tasks",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, opts, func(ctx context.Context, application *app.App) error {
					return application.TaskStatus(ctx)
				})
			},
		},
	)
	return cmd
}
