package repo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/light-bringer/optics-service/internal/models/m_order"
	"github.com/light-bringer/optics-service/internal/pkg/query"
)

// InvoiceStatement projects one order into an invoice with item and unit
// counts. An order without line items still yields an empty invoice.
func InvoiceStatement(id primitive.ObjectID) query.Statement {
	items := query.IfNull(query.Ref(m_order.Products), bson.A{})

	return query.From(m_order.CollectionName).
		Match(query.Eq(m_order.ID, id)).
		Project(bson.D{
			{Key: "_id", Value: 0},
			{Key: "orderId", Value: "$_id"},
			{Key: "customerInfo", Value: 1},
			{Key: "items", Value: items},
			{Key: "itemCount", Value: bson.D{{Key: "$size", Value: items}}},
			{Key: "totalQuantity", Value: query.SumArray(m_order.ItemQuantity)},
			{Key: "totalPrice", Value: 1},
			{Key: "paymentStatus", Value: 1},
			{Key: "orderStatus", Value: 1},
			{Key: "date", Value: 1},
		}).
		Build()
}
