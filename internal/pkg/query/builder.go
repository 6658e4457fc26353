package query

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Direction represents sort direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

func (d Direction) order() int {
	if d == Desc {
		return -1
	}
	return 1
}

// SortKey is one key of a $sort stage.
type SortKey struct {
	Field     string
	Direction Direction
}

// By creates a SortKey.
func By(field string, direction Direction) SortKey {
	return SortKey{Field: field, Direction: direction}
}

// Statement is an aggregation pipeline bound to the collection it runs against.
type Statement struct {
	Collection string
	Pipeline   mongo.Pipeline
}

// Builder constructs MongoDB aggregation pipelines.
// Every method returns a new Builder, so a partially built pipeline can be
// shared as a base for several statements.
type Builder struct {
	collection string
	stages     []bson.D
}

// From creates a new Builder for the specified collection.
func From(collection string) *Builder {
	return &Builder{
		collection: collection,
		stages:     []bson.D{},
	}
}

// Match adds a $match stage. Conditions are combined with AND logic.
// Empty conditions are dropped; if nothing is left no stage is added.
func (b *Builder) Match(conditions ...Condition) *Builder {
	filter := And(conditions...).Filter()
	if len(filter) == 0 {
		return b
	}
	return b.with(bson.D{{Key: "$match", Value: filter}})
}

// AddFields adds a single computed field to every document.
func (b *Builder) AddFields(field string, expr interface{}) *Builder {
	return b.with(bson.D{{Key: "$addFields", Value: bson.D{{Key: field, Value: expr}}}})
}

// Project adds a $project stage with the given specification.
func (b *Builder) Project(spec bson.D) *Builder {
	return b.with(bson.D{{Key: "$project", Value: spec}})
}

// Sort adds a $sort stage. Keys are applied in the given order.
func (b *Builder) Sort(keys ...SortKey) *Builder {
	if len(keys) == 0 {
		return b
	}
	spec := make(bson.D, 0, len(keys))
	for _, k := range keys {
		spec = append(spec, bson.E{Key: k.Field, Value: k.Direction.order()})
	}
	return b.with(bson.D{{Key: "$sort", Value: spec}})
}

// Limit sets the maximum number of documents to return.
func (b *Builder) Limit(limit int64) *Builder {
	if limit <= 0 {
		return b
	}
	return b.with(bson.D{{Key: "$limit", Value: limit}})
}

// Unwind adds an $unwind stage for the array at path (without the leading "$").
func (b *Builder) Unwind(path string) *Builder {
	return b.with(bson.D{{Key: "$unwind", Value: "$" + path}})
}

// Group adds a $group stage keyed by id.
func (b *Builder) Group(id interface{}, accumulators ...Accumulator) *Builder {
	spec := bson.D{{Key: "_id", Value: id}}
	for _, acc := range accumulators {
		spec = append(spec, bson.E{Key: acc.Field, Value: bson.D{{Key: acc.Op, Value: acc.Expr}}})
	}
	return b.with(bson.D{{Key: "$group", Value: spec}})
}

// Lookup adds a left outer join against another collection.
func (b *Builder) Lookup(from, localField, foreignField, as string) *Builder {
	return b.with(bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
	}}})
}

// Count returns a new builder that counts the documents surviving the
// filtering stages. Projection, sort and limit stages are dropped.
func (b *Builder) Count() *Builder {
	nb := &Builder{collection: b.collection, stages: make([]bson.D, 0, len(b.stages)+1)}
	for _, stage := range b.stages {
		switch stage[0].Key {
		case "$project", "$sort", "$limit":
			continue
		}
		nb.stages = append(nb.stages, stage)
	}
	nb.stages = append(nb.stages, bson.D{{Key: "$count", Value: "count"}})
	return nb
}

// Build constructs the final Statement.
func (b *Builder) Build() Statement {
	pipeline := make(mongo.Pipeline, len(b.stages))
	copy(pipeline, b.stages)
	return Statement{
		Collection: b.collection,
		Pipeline:   pipeline,
	}
}

// with returns a copy of the builder with stage appended.
func (b *Builder) with(stage bson.D) *Builder {
	nb := &Builder{
		collection: b.collection,
		stages:     make([]bson.D, len(b.stages), len(b.stages)+1),
	}
	copy(nb.stages, b.stages)
	nb.stages = append(nb.stages, stage)
	return nb
}

// String returns a human-readable representation for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("Collection: %s\nPipeline: %v", stmt.Collection, stmt.Pipeline)
}
