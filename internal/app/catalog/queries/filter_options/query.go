package filter_options

import (
	"context"

	"github.com/light-bringer/optics-service/internal/app/catalog/contracts"
)

// Query handles filter option discovery.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new filter options query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute returns the distinct filter values and the catalog price span.
func (q *Query) Execute(ctx context.Context) (*contracts.FilterOptions, error) {
	return q.readModel.FilterOptions(ctx)
}
