package stores

import (
	"context"

	"perf-analytics/internal/models"
	"perf-analytics/internal/shared/databases"
)

// PageViewStore reads page-view beacons from pv_log.
//
//go:generate mockgen -source=page_view_store.go -destination=./mocks/page_view_store_mock.go -package=mocks
type PageViewStore interface {
	Stream(ctx context.Context, fn func(*models.PageView) error) error
}

type pageViewStore struct {
	collections *databases.Collections
}

func NewPageViewStore(collections *databases.Collections) PageViewStore {
	return &pageViewStore{collections: collections}
}

func (s *pageViewStore) Stream(ctx context.Context, fn func(*models.PageView) error) error {
	coll := s.collections.Get(databases.CollectionPageViews)
	return streamCollection(ctx, coll, (*pageViewDocument).toModel, fn)
}
