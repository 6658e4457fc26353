package query

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// Run executes stmt against db and decodes every result document into results,
// which must be a pointer to a slice.
func Run(ctx context.Context, db *mongo.Database, stmt Statement, results interface{}) error {
	cursor, err := db.Collection(stmt.Collection).Aggregate(ctx, stmt.Pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, results)
}

// RunCount executes a statement produced by Builder.Count and returns the count.
// An empty result means nothing matched.
func RunCount(ctx context.Context, db *mongo.Database, stmt Statement) (int64, error) {
	var rows []struct {
		Count int64 `bson:"count"`
	}
	if err := Run(ctx, db, stmt, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Count, nil
}
