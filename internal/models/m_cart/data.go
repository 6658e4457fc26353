package m_cart

import "go.mongodb.org/mongo-driver/bson/primitive"

// Data represents one line of a customer's cart.
// (email, productId) is unique.
type Data struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Email       string             `bson:"email"`
	ProductID   string             `bson:"productId"`
	ProductName string             `bson:"productName"`
	BrandName   string             `bson:"brandName,omitempty"`
	Image       string             `bson:"image,omitempty"`
	Price       float64            `bson:"price"`
	Quantity    int                `bson:"quantity"`
}
