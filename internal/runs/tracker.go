package runs

import (
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot is a point-in-time view of the current run.
type Snapshot struct {
	Job       string    `json:"job"`
	RunID     string    `json:"runId"`
	StartedAt time.Time `json:"startedAt"`
	Processed int64     `json:"processed"`
	Running   bool      `json:"running"`
}

// Tracker records how far the current run has got. The run itself is
// single-threaded; the only concurrent reader is the status endpoint.
type Tracker struct {
	mu        sync.RWMutex
	job       string
	runID     string
	startedAt time.Time
	running   bool

	processed atomic.Int64
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Start(job, runID string, startedAt time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.job = job
	t.runID = runID
	t.startedAt = startedAt
	t.running = true
	t.processed.Store(0)
}

// Advance counts one more processed record and returns the new total.
func (t *Tracker) Advance() int64 {
	return t.processed.Add(1)
}

func (t *Tracker) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Snapshot{
		Job:       t.job,
		RunID:     t.runID,
		StartedAt: t.startedAt,
		Processed: t.processed.Load(),
		Running:   t.running,
	}
}
