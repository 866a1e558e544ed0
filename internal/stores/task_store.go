package stores

import (
	"context"
	"errors"
	"fmt"

	"perf-analytics/internal/models"
	"perf-analytics/internal/shared/databases"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// TaskStore keeps the audit task queue. Tasks are identified by their natural
// key (requestedUrl + mode), and Upsert is "insert if absent, otherwise leave
// alone", so re-running a population over the same page views is safe:
//   - Run A upserts {url: "/a", mode: "mobile"} -> created
//   - Run B upserts {url: "/a", mode: "mobile"} -> matched, no new document
//
//go:generate mockgen -source=task_store.go -destination=./mocks/task_store_mock.go -package=mocks
type TaskStore interface {
	// Upsert queues task in perf_tasks_unfinished. created is false when the key was already queued.
	Upsert(ctx context.Context, task models.Task) (created bool, err error)
	// IsFinished reports whether task already has a result in perf_tasks_finished.
	IsFinished(ctx context.Context, task models.Task) (bool, error)
	CountUnfinished(ctx context.Context) (int64, error)
	CountFinished(ctx context.Context) (int64, error)
}

type taskStore struct {
	collections *databases.Collections
}

func NewTaskStore(collections *databases.Collections) TaskStore {
	return &taskStore{collections: collections}
}

func (s *taskStore) Upsert(ctx context.Context, task models.Task) (bool, error) {
	coll := s.collections.Get(databases.CollectionTasksUnfinished)
	filter := taskFilter(task)
	update := bson.D{{Key: "$set", Value: taskDocument{RequestedURL: task.RequestedURL, Mode: string(task.Mode)}}}

	result, err := coll.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("failed to upsert task %q: %w", task.Key(), err)
	}
	return result.UpsertedCount > 0, nil
}

func (s *taskStore) IsFinished(ctx context.Context, task models.Task) (bool, error) {
	coll := s.collections.Get(databases.CollectionTasksFinished)
	err := coll.FindOne(ctx, taskFilter(task), options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up finished task %q: %w", task.Key(), err)
	}
	return true, nil
}

func (s *taskStore) CountUnfinished(ctx context.Context) (int64, error) {
	return s.count(ctx, databases.CollectionTasksUnfinished)
}

func (s *taskStore) CountFinished(ctx context.Context) (int64, error) {
	return s.count(ctx, databases.CollectionTasksFinished)
}

func (s *taskStore) count(ctx context.Context, collection string) (int64, error) {
	n, err := s.collections.Get(collection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", s.collections.Name(collection), err)
	}
	return n, nil
}
