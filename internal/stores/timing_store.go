package stores

import (
	"context"

	"perf-analytics/internal/models"
	"perf-analytics/internal/shared/databases"
)

// TimingStore reads real-user timing beacons. Both perf_afterOL and perf_OL
// share one document shape, so the caller names the collection.
//
//go:generate mockgen -source=timing_store.go -destination=./mocks/timing_store_mock.go -package=mocks
type TimingStore interface {
	Stream(ctx context.Context, collection string, fn func(*models.TimingRecord) error) error
}

type timingStore struct {
	collections *databases.Collections
}

func NewTimingStore(collections *databases.Collections) TimingStore {
	return &timingStore{collections: collections}
}

func (s *timingStore) Stream(ctx context.Context, collection string, fn func(*models.TimingRecord) error) error {
	coll := s.collections.Get(collection)
	return streamCollection(ctx, coll, (*timingDocument).toModel, fn)
}
