package runs

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTracker_Lifecycle(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()
	assert.False(t, tracker.Snapshot().Running)

	startedAt := time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC)
	tracker.Start("fmp", "01RUN", startedAt)
	assert.Equal(t, int64(1), tracker.Advance())
	assert.Equal(t, int64(2), tracker.Advance())

	snap := tracker.Snapshot()
	assert.Equal(t, Snapshot{Job: "fmp", RunID: "01RUN", StartedAt: startedAt, Processed: 2, Running: true}, snap)

	tracker.Finish()
	assert.False(t, tracker.Snapshot().Running)
	assert.Equal(t, int64(2), tracker.Snapshot().Processed)

	// a new run starts from zero
	tracker.Start("timing", "02RUN", startedAt)
	assert.Equal(t, int64(0), tracker.Snapshot().Processed)
}

func TestTracker_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()
	tracker.Start("audits", "01RUN", time.Now())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = tracker.Snapshot()
		}
	}()
	for i := 0; i < 1000; i++ {
		tracker.Advance()
	}
	wg.Wait()

	assert.Equal(t, int64(1000), tracker.Snapshot().Processed)
}
