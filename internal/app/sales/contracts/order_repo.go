package contracts

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/light-bringer/optics-service/internal/app/sales/domain"
)

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) (string, error)

	// List returns orders newest first; a non-empty email restricts to that customer.
	List(ctx context.Context, email string) ([]bson.M, error)

	SetOrderStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) error
	SetPaymentStatus(ctx context.Context, id primitive.ObjectID, status domain.PaymentStatus) error
}

// InvoiceReader builds invoices from stored orders.
type InvoiceReader interface {
	// GetInvoice returns domain.ErrOrderNotFound when no order has the id.
	GetInvoice(ctx context.Context, id primitive.ObjectID) (bson.M, error)
}
