package stores

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// streamCollection decodes every document of coll into D, one at a time, and
// hands the converted model to fn. The first error from fn stops the scan.
func streamCollection[D any, M any](ctx context.Context, coll *mongo.Collection, convert func(*D) M, fn func(M) error) error {
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc D
		if err := cursor.Decode(&doc); err != nil {
			return fmt.Errorf("failed to decode %s document: %w", coll.Name(), err)
		}
		if err := fn(convert(&doc)); err != nil {
			return err
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("failed to iterate %s: %w", coll.Name(), err)
	}
	return nil
}
