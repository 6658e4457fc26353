package place_order

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/optics-service/internal/app/sales/contracts"
	"github.com/light-bringer/optics-service/internal/app/sales/domain"
	"github.com/light-bringer/optics-service/internal/pkg/clock"
)

// Item is one line of the checkout form.
type Item struct {
	ProductID string
	Name      string
	Brand     string
	Image     string
	Quantity  int
	Price     float64
}

// Request contains the checkout.
type Request struct {
	Customer domain.Customer
	Items    []Item
}

// Response reports the stored order.
type Response struct {
	OrderID    string
	TotalPrice decimal.Decimal
}

// Interactor handles checkout.
type Interactor struct {
	repo  contracts.OrderRepository
	clock clock.Clock
}

// NewInteractor creates a new place order interactor.
func NewInteractor(repo contracts.OrderRepository, clock clock.Clock) *Interactor {
	return &Interactor{
		repo:  repo,
		clock: clock,
	}
}

// Execute prices the checkout and stores it as a Pending, unpaid order.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	items := make([]domain.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.Item{
			ProductID: it.ProductID,
			Name:      it.Name,
			Brand:     it.Brand,
			Image:     it.Image,
			Quantity:  it.Quantity,
			Price:     decimal.NewFromFloat(it.Price),
		})
	}

	order, err := domain.NewOrder(req.Customer, items, i.clock.Now())
	if err != nil {
		return nil, err
	}

	id, err := i.repo.Insert(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	return &Response{OrderID: id, TotalPrice: order.Total}, nil
}
