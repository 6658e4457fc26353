package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/light-bringer/optics-service/internal/models/m_order"
	"github.com/light-bringer/optics-service/internal/models/m_product"
	"github.com/light-bringer/optics-service/internal/models/m_user"
)

// Insert stores doc in collection and returns its generated ID.
func Insert(t *testing.T, db *mongo.Database, collection string, doc interface{}) primitive.ObjectID {
	t.Helper()

	res, err := db.Collection(collection).InsertOne(context.Background(), doc)
	require.NoError(t, err, "failed to insert into %s", collection)

	id, ok := res.InsertedID.(primitive.ObjectID)
	require.True(t, ok, "inserted ID is not an ObjectID")
	return id
}

// CreateTestProduct stores an in-stock product priced at amount.
func CreateTestProduct(t *testing.T, db *mongo.Database, name, brand, amount string) primitive.ObjectID {
	t.Helper()

	return Insert(t, db, m_product.CollectionName, &m_product.Data{
		ProductName: name,
		BrandName:   brand,
		Category:    "Eyeglasses",
		Status:      "in-stock",
		Price:       m_product.PriceData{Amount: amount, Currency: "USD"},
	})
}

// CreateTestUser stores a user with role.
func CreateTestUser(t *testing.T, db *mongo.Database, email, role string) primitive.ObjectID {
	t.Helper()

	return Insert(t, db, m_user.CollectionName, &m_user.Data{
		Email: email,
		Name:  "Test User",
		Role:  role,
		Image: "https://img.example.com/" + email,
	})
}

// OrderLine is one line of a test order.
type OrderLine struct {
	ProductID string
	Name      string
	Quantity  int
	Price     float64
}

// CreateTestOrder stores an order for email with the given payment status,
// division and lines, dated at date.
func CreateTestOrder(t *testing.T, db *mongo.Database, email, division, paymentStatus string, date time.Time, lines ...OrderLine) primitive.ObjectID {
	t.Helper()

	order := &m_order.Data{
		CustomerInfo:  m_order.CustomerData{Name: "Customer " + email, Email: email, Division: division},
		PaymentStatus: paymentStatus,
		OrderStatus:   "Pending",
		Date:          date.UTC(),
	}
	for _, l := range lines {
		subtotal := l.Price * float64(l.Quantity)
		order.Products = append(order.Products, m_order.ItemData{
			ProductID: l.ProductID,
			Name:      l.Name,
			Brand:     "Zeta",
			Quantity:  l.Quantity,
			Price:     l.Price,
			Subtotal:  subtotal,
		})
		order.TotalPrice += subtotal
	}

	return Insert(t, db, m_order.CollectionName, order)
}
