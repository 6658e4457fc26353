package query

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// Condition represents a $match predicate.
// Implementations render a filter document; an empty document means
// "no restriction" and is dropped by the builder.
type Condition interface {
	Filter() bson.D
}

// filterCondition is a Condition backed by a fixed document.
type filterCondition bson.D

func (c filterCondition) Filter() bson.D {
	return bson.D(c)
}

// Eq creates an equality condition.
// Example: Eq("gender", "men") renders {gender: "men"}
func Eq(field string, value interface{}) Condition {
	return filterCondition{{Key: field, Value: value}}
}

// Ne creates an inequality condition.
func Ne(field string, value interface{}) Condition {
	return filterCondition{{Key: field, Value: bson.D{{Key: "$ne", Value: value}}}}
}

// NotNull matches documents where field is present and not null.
func NotNull(field string) Condition {
	return Ne(field, nil)
}

// NotIn matches documents where field equals none of values.
func NotIn(field string, values ...interface{}) Condition {
	return filterCondition{{Key: field, Value: bson.D{{Key: "$nin", Value: bson.A(values)}}}}
}

// Exists matches documents where field is present and not null.
// Unlike NotNull it states the presence check explicitly, which lets the
// server use a sparse index.
func Exists(field string) Condition {
	return filterCondition{{Key: field, Value: bson.D{
		{Key: "$exists", Value: true},
		{Key: "$ne", Value: nil},
	}}}
}

// ContainsFold matches a case-insensitive literal substring.
// Regex metacharacters in text are escaped.
func ContainsFold(field, text string) Condition {
	return filterCondition{{Key: field, Value: bson.D{
		{Key: "$regex", Value: regexp.QuoteMeta(text)},
		{Key: "$options", Value: "i"},
	}}}
}

// Range matches documents whose field lies within [min, max].
// A nil bound leaves that side open; with both nil the condition is empty.
func Range(field string, min, max *float64) Condition {
	bounds := bson.D{}
	if min != nil {
		bounds = append(bounds, bson.E{Key: "$gte", Value: *min})
	}
	if max != nil {
		bounds = append(bounds, bson.E{Key: "$lte", Value: *max})
	}
	if len(bounds) == 0 {
		return filterCondition{}
	}
	return filterCondition{{Key: field, Value: bounds}}
}

// Or combines conditions with OR logic. Empty conditions are ignored.
func Or(conditions ...Condition) Condition {
	filters := nonEmpty(conditions)
	switch len(filters) {
	case 0:
		return filterCondition{}
	case 1:
		return filterCondition(filters[0])
	}
	return filterCondition{{Key: "$or", Value: filters}}
}

// And combines conditions with AND logic. Fields are merged into one
// document unless a key repeats, in which case an explicit $and is used.
func And(conditions ...Condition) Condition {
	filters := nonEmpty(conditions)
	if len(filters) == 1 {
		return filterCondition(filters[0])
	}

	merged := bson.D{}
	seen := make(map[string]bool)
	for _, f := range filters {
		for _, e := range f {
			if seen[e.Key] {
				return filterCondition{{Key: "$and", Value: filters}}
			}
			seen[e.Key] = true
			merged = append(merged, e)
		}
	}
	return filterCondition(merged)
}

func nonEmpty(conditions []Condition) []bson.D {
	filters := make([]bson.D, 0, len(conditions))
	for _, c := range conditions {
		if c == nil {
			continue
		}
		if f := c.Filter(); len(f) > 0 {
			filters = append(filters, f)
		}
	}
	return filters
}
