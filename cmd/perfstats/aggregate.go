package main

import (
	"context"

	"perf-analytics/internal/app"

	"github.com/spf13/cobra"
)

func newAggregateCommand(opts *rootOptions, job, short string) *cobra.Command {
	return &cobra.Command{
		Use:   job,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, application *app.App) error {
				return application.RunAggregation(ctx, job)
			})
		},
	}
}
