package databases

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Collection base names. The configured prefix is prepended to each.
const (
	CollectionPageViews       = "pv_log"
	CollectionTimingsAfterOL  = "perf_afterOL"
	CollectionTimingsOL       = "perf_OL"
	CollectionTasksFinished   = "perf_tasks_finished"
	CollectionTasksUnfinished = "perf_tasks_unfinished"
)

// Connect opens a client and pings the primary, giving up after timeout.
var Connect = func(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to reach mongo: %w", err)
	}
	return client, nil
}

// Collections resolves base collection names inside one database.
type Collections struct {
	db     *mongo.Database
	prefix string
}

func NewCollections(db *mongo.Database, prefix string) *Collections {
	return &Collections{db: db, prefix: prefix}
}

// Name returns the full collection name for a base name.
func (c *Collections) Name(base string) string {
	return c.prefix + base
}

// Get returns the handle for a base name.
func (c *Collections) Get(base string) *mongo.Collection {
	return c.db.Collection(c.Name(base))
}
