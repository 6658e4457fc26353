package update_order_status

import (
	"context"

	"github.com/light-bringer/optics-service/internal/app/sales/contracts"
	"github.com/light-bringer/optics-service/internal/app/sales/domain"
	"github.com/light-bringer/optics-service/internal/pkg/ids"
)

// Interactor changes the fulfilment and payment status of orders.
// These are the only order fields that change after checkout.
type Interactor struct {
	repo contracts.OrderRepository
}

// NewInteractor creates a new update order status interactor.
func NewInteractor(repo contracts.OrderRepository) *Interactor {
	return &Interactor{
		repo: repo,
	}
}

// SetOrderStatus moves the order to a fulfilment stage.
func (i *Interactor) SetOrderStatus(ctx context.Context, orderID, status string) error {
	id, err := ids.Parse(orderID)
	if err != nil {
		return err
	}
	s, err := domain.ParseOrderStatus(status)
	if err != nil {
		return err
	}
	return i.repo.SetOrderStatus(ctx, id, s)
}

// SetPaymentStatus records payment. Moving an order away from Paid removes it
// from later revenue reports.
func (i *Interactor) SetPaymentStatus(ctx context.Context, orderID, status string) error {
	id, err := ids.Parse(orderID)
	if err != nil {
		return err
	}
	s, err := domain.ParsePaymentStatus(status)
	if err != nil {
		return err
	}
	return i.repo.SetPaymentStatus(ctx, id, s)
}
