package latest_products

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/light-bringer/optics-service/internal/app/report/contracts"
)

// DefaultLimit is the number of products on the "new arrivals" shelf.
const DefaultLimit = 9

// Query lists the newest products.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new latest products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute returns the DefaultLimit most recently added products.
func (q *Query) Execute(ctx context.Context) ([]bson.M, error) {
	return q.readModel.LatestProducts(ctx, DefaultLimit)
}
