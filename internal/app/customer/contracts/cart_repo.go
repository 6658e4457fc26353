package contracts

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/light-bringer/optics-service/internal/app/customer/domain"
)

// CartItemDTO is a cart line as returned to clients.
type CartItemDTO struct {
	ID          string  `json:"_id"`
	Email       string  `json:"email"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	BrandName   string  `json:"brandName,omitempty"`
	Image       string  `json:"image,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// CartRepository defines the interface for cart persistence.
type CartRepository interface {
	// Add inserts the line unless the customer already has the product,
	// in one store call. A duplicate yields a *domain.ConflictError.
	Add(ctx context.Context, item *domain.CartItem) (string, error)

	ListByEmail(ctx context.Context, email string) ([]*CartItemDTO, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DeleteByEmail empties a customer's cart and reports how many lines went.
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}
