// Package testutil holds helpers for integration tests that run against a
// real MongoDB. Tests using it carry the integration build tag.
package testutil

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// SetupMongoTest connects to $MONGODB_URI and returns a fresh database that
// is dropped when the test ends. The test is skipped when the variable is unset.
func SetupMongoTest(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err, "failed to connect to MongoDB")
	require.NoError(t, client.Ping(ctx, readpref.Primary()), "MongoDB not responding")

	name := "optics_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	db := client.Database(name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

// EnsureUniqueIndex creates a unique index over keys on collection.
func EnsureUniqueIndex(t *testing.T, db *mongo.Database, collection string, keys ...string) {
	t.Helper()

	spec := bson.D{}
	for _, k := range keys {
		spec = append(spec, bson.E{Key: k, Value: 1})
	}
	_, err := db.Collection(collection).Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    spec,
		Options: options.Index().SetUnique(true),
	})
	require.NoError(t, err, "failed to create unique index on %s", collection)
}

// AssertCount asserts the number of documents in collection matching filter.
func AssertCount(t *testing.T, db *mongo.Database, collection string, filter interface{}, expected int64) {
	t.Helper()

	if filter == nil {
		filter = bson.D{}
	}
	count, err := db.Collection(collection).CountDocuments(context.Background(), filter)
	require.NoError(t, err, "failed to count %s", collection)
	require.Equal(t, expected, count, "unexpected document count in %s", collection)
}
