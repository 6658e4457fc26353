package place_order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/light-bringer/optics-service/internal/app/sales/domain"
	"github.com/light-bringer/optics-service/internal/pkg/clock"
)

type fakeRepo struct {
	orders []*domain.Order
}

func (f *fakeRepo) Insert(_ context.Context, o *domain.Order) (string, error) {
	f.orders = append(f.orders, o)
	return primitive.NewObjectID().Hex(), nil
}

func (f *fakeRepo) List(context.Context, string) ([]bson.M, error) { return nil, nil }

func (f *fakeRepo) SetOrderStatus(context.Context, primitive.ObjectID, domain.OrderStatus) error {
	return nil
}

func (f *fakeRepo) SetPaymentStatus(context.Context, primitive.ObjectID, domain.PaymentStatus) error {
	return nil
}

func TestPlaceOrder(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{}
	uc := NewInteractor(repo, clock.NewMockClock(now))

	resp, err := uc.Execute(context.Background(), &Request{
		Customer: domain.Customer{Name: "Ana", Email: "ana@example.com", Division: "Dhaka"},
		Items: []Item{
			{ProductID: "p1", Name: "Ray-X", Quantity: 3, Price: 0.1},
			{ProductID: "p2", Name: "Clearview", Quantity: 1, Price: 80},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.OrderID)
	assert.Equal(t, "80.3", resp.TotalPrice.String())

	require.Len(t, repo.orders, 1)
	assert.Equal(t, now, repo.orders[0].Date)
	assert.Equal(t, domain.OrderPending, repo.orders[0].OrderStatus)
	assert.Equal(t, domain.PaymentUnpaid, repo.orders[0].PaymentStatus)
}

func TestPlaceOrder_Rejected(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewInteractor(repo, clock.NewMockClock(time.Now()))

	_, err := uc.Execute(context.Background(), &Request{Customer: domain.Customer{Email: "ana@example.com"}})
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
	assert.Empty(t, repo.orders)
}
