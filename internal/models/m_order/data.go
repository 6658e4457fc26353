package m_order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Data represents the stored shape of an order document.
type Data struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	CustomerInfo  CustomerData       `bson:"customerInfo"`
	Products      []ItemData         `bson:"products"`
	TotalPrice    float64            `bson:"totalPrice"`
	PaymentStatus string             `bson:"paymentStatus"`
	OrderStatus   string             `bson:"orderStatus"`
	Date          time.Time          `bson:"date"`
}

// CustomerData is the buyer snapshot taken at checkout.
type CustomerData struct {
	Name     string `bson:"name"`
	Email    string `bson:"email"`
	Phone    string `bson:"phone,omitempty"`
	Division string `bson:"division,omitempty"`
	Address  string `bson:"address,omitempty"`
}

// ItemData is one order line. Price and image are copied from the catalog
// at checkout and never refreshed.
type ItemData struct {
	ProductID string  `bson:"productId"`
	Name      string  `bson:"name"`
	Brand     string  `bson:"brand,omitempty"`
	Image     string  `bson:"image,omitempty"`
	Quantity  int     `bson:"quantity"`
	Price     float64 `bson:"price"`
	Subtotal  float64 `bson:"subtotal"`
}
