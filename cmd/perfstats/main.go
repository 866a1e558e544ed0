package main

import (
	"context"
	"fmt"
	"os"

	"perf-analytics/internal/shared/svcerrors"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "perfstats: %v\n", err)
		os.Exit(svcerrors.ExitCodeOf(err))
	}
}
