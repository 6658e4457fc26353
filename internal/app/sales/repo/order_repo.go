package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/light-bringer/optics-service/internal/app/sales/contracts"
	"github.com/light-bringer/optics-service/internal/app/sales/domain"
	"github.com/light-bringer/optics-service/internal/models/m_order"
	"github.com/light-bringer/optics-service/internal/pkg/query"
)

// OrderRepo implements OrderRepository and InvoiceReader for MongoDB.
type OrderRepo struct {
	db   *mongo.Database
	coll *mongo.Collection
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *mongo.Database) *OrderRepo {
	return &OrderRepo{
		db:   db,
		coll: db.Collection(m_order.CollectionName),
	}
}

var (
	_ contracts.OrderRepository = (*OrderRepo)(nil)
	_ contracts.InvoiceReader   = (*OrderRepo)(nil)
)

func (r *OrderRepo) Insert(ctx context.Context, o *domain.Order) (string, error) {
	res, err := r.coll.InsertOne(ctx, orderToData(o))
	if err != nil {
		return "", fmt.Errorf("failed to insert order: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (r *OrderRepo) List(ctx context.Context, email string) ([]bson.M, error) {
	filter := bson.D{}
	if email != "" {
		filter = bson.D{{Key: m_order.CustomerEmail, Value: email}}
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: m_order.Date, Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	orders := []bson.M{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepo) SetOrderStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) error {
	return r.set(ctx, id, m_order.OrderStatus, string(status))
}

func (r *OrderRepo) SetPaymentStatus(ctx context.Context, id primitive.ObjectID, status domain.PaymentStatus) error {
	return r.set(ctx, id, m_order.PaymentStatus, string(status))
}

// GetInvoice runs the invoice pipeline for one order.
func (r *OrderRepo) GetInvoice(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var rows []bson.M
	if err := query.Run(ctx, r.db, InvoiceStatement(id), &rows); err != nil {
		return nil, fmt.Errorf("failed to build invoice: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return rows[0], nil
}

func (r *OrderRepo) set(ctx context.Context, id primitive.ObjectID, field, value string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: m_order.ID, Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: field, Value: value}}}},
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// orderToData converts an order to its stored shape. Money is stored as
// doubles rounded to cents.
func orderToData(o *domain.Order) *m_order.Data {
	items := make([]m_order.ItemData, 0, len(o.Items))
	for _, it := range o.Items {
		price, _ := it.Price.Round(2).Float64()
		subtotal, _ := it.Subtotal.Float64()
		items = append(items, m_order.ItemData{
			ProductID: it.ProductID,
			Name:      it.Name,
			Brand:     it.Brand,
			Image:     it.Image,
			Quantity:  it.Quantity,
			Price:     price,
			Subtotal:  subtotal,
		})
	}

	total, _ := o.Total.Round(2).Float64()
	return &m_order.Data{
		CustomerInfo: m_order.CustomerData{
			Name:     o.Customer.Name,
			Email:    o.Customer.Email,
			Phone:    o.Customer.Phone,
			Division: o.Customer.Division,
			Address:  o.Customer.Address,
		},
		Products:      items,
		TotalPrice:    total,
		PaymentStatus: string(o.PaymentStatus),
		OrderStatus:   string(o.OrderStatus),
		Date:          o.Date,
	}
}
