package query

import "go.mongodb.org/mongo-driver/bson"

// Accumulator is one output field of a $group stage.
type Accumulator struct {
	Field string
	Op    string
	Expr  interface{}
}

// Sum accumulates the sum of expr into field.
func Sum(field string, expr interface{}) Accumulator {
	return Accumulator{Field: field, Op: "$sum", Expr: expr}
}

// CountAs accumulates the number of grouped documents into field.
func CountAs(field string) Accumulator {
	return Sum(field, 1)
}

// First keeps the first value of expr in the group.
func First(field string, expr interface{}) Accumulator {
	return Accumulator{Field: field, Op: "$first", Expr: expr}
}

// Push collects expr from every document in the group.
func Push(field string, expr interface{}) Accumulator {
	return Accumulator{Field: field, Op: "$push", Expr: expr}
}

// Min keeps the smallest non-null value of expr.
func Min(field string, expr interface{}) Accumulator {
	return Accumulator{Field: field, Op: "$min", Expr: expr}
}

// Max keeps the largest non-null value of expr.
func Max(field string, expr interface{}) Accumulator {
	return Accumulator{Field: field, Op: "$max", Expr: expr}
}

// Ref turns a field path into an expression operand: Ref("price.amount") is "$price.amount".
func Ref(path string) string {
	return "$" + path
}

// ToDouble converts the value at path to a double. Values that cannot be
// converted, and missing values, become null instead of failing the pipeline.
func ToDouble(path string) bson.D {
	return bson.D{{Key: "$convert", Value: bson.D{
		{Key: "input", Value: Ref(path)},
		{Key: "to", Value: "double"},
		{Key: "onError", Value: nil},
		{Key: "onNull", Value: nil},
	}}}
}

// DayOf formats the date at path as YYYY-MM-DD (UTC). Strings are parsed
// as dates first; unparseable values yield null.
func DayOf(path string) bson.D {
	return bson.D{{Key: "$dateToString", Value: bson.D{
		{Key: "format", Value: "%Y-%m-%d"},
		{Key: "date", Value: bson.D{{Key: "$convert", Value: bson.D{
			{Key: "input", Value: Ref(path)},
			{Key: "to", Value: "date"},
			{Key: "onError", Value: nil},
			{Key: "onNull", Value: nil},
		}}}},
	}}}
}

// FirstElem returns the first element of the array at path.
func FirstElem(path string) bson.D {
	return bson.D{{Key: "$arrayElemAt", Value: bson.A{Ref(path), 0}}}
}

// IfNull returns fallback when expr is null or missing.
func IfNull(expr, fallback interface{}) bson.D {
	return bson.D{{Key: "$ifNull", Value: bson.A{expr, fallback}}}
}

// SumArray sums the numeric array at path within a single document.
func SumArray(path string) bson.D {
	return bson.D{{Key: "$sum", Value: Ref(path)}}
}

// Include builds a projection keeping the listed fields.
func Include(fields ...string) bson.D {
	spec := make(bson.D, 0, len(fields))
	for _, f := range fields {
		spec = append(spec, bson.E{Key: f, Value: 1})
	}
	return spec
}
