package get_product

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/light-bringer/optics-service/internal/app/catalog/contracts"
	"github.com/light-bringer/optics-service/internal/pkg/ids"
)

// Request contains the product ID to retrieve.
type Request struct {
	ProductID string
}

// Query handles the get product query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get product query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a product by ID.
func (q *Query) Execute(ctx context.Context, req *Request) (bson.M, error) {
	id, err := ids.Parse(req.ProductID)
	if err != nil {
		return nil, err
	}
	return q.readModel.GetProductByID(ctx, id)
}
