package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// upsertOnce applies an insert-if-absent update and returns the _id of the
// document that now matches filter: the candidate id from update when this
// call inserted, the existing id otherwise.
//
// Two concurrent upserts on a unique key can both miss the filter; the loser
// fails with a duplicate key error and reads the winner back.
func upsertOnce(ctx context.Context, coll *mongo.Collection, filter, update bson.D) (primitive.ObjectID, error) {
	var got struct {
		ID primitive.ObjectID `bson:"_id"`
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetProjection(bson.D{{Key: "_id", Value: 1}})

	err := coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&got)
	if mongo.IsDuplicateKeyError(err) {
		err = coll.FindOne(ctx, filter, options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})).Decode(&got)
	}
	if err != nil {
		return primitive.NilObjectID, err
	}
	return got.ID, nil
}

// insertedHex renders the generated identifier of an insert.
func insertedHex(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(res.InsertedID)
}
