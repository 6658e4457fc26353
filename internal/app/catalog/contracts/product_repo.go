package contracts

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/light-bringer/optics-service/internal/app/catalog/domain"
)

// ProductRepository defines the interface for product persistence.
type ProductRepository interface {
	// Insert stores a new product and returns its identifier.
	Insert(ctx context.Context, product *domain.Product) (string, error)

	// Replace overwrites every display field of an existing product.
	// Returns domain.ErrProductNotFound when no document has the id.
	Replace(ctx context.Context, id primitive.ObjectID, product *domain.Product) error

	// Delete removes a product. Returns domain.ErrProductNotFound when absent.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
