package top_selling

import (
	"context"

	"github.com/light-bringer/optics-service/internal/app/report/contracts"
)

// DefaultLimit is the size of the best-seller list.
const DefaultLimit = 10

// Query ranks the best-selling products.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new top selling products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute returns the DefaultLimit best sellers across all paid orders.
func (q *Query) Execute(ctx context.Context) ([]*contracts.ProductSales, error) {
	return q.readModel.TopSellingProducts(ctx, DefaultLimit)
}
