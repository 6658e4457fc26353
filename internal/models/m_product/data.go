package m_product

import "go.mongodb.org/mongo-driver/bson/primitive"

// Data represents the stored shape of a product document.
type Data struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ProductName   string             `bson:"productName"`
	BrandName     string             `bson:"brandName"`
	Category      string             `bson:"category"`
	Gender        string             `bson:"gender,omitempty"`
	Origin        string             `bson:"origin,omitempty"`
	FrameMaterial string             `bson:"frameMaterial,omitempty"`
	FrameSize     string             `bson:"frameSize,omitempty"`
	FrameType     string             `bson:"frameType,omitempty"`
	Color         string             `bson:"color,omitempty"`
	LensMaterial  string             `bson:"lensMaterial,omitempty"`
	Prescription  string             `bson:"prescription,omitempty"`
	Dimensions    string             `bson:"dimensions,omitempty"`
	Warranty      string             `bson:"warranty,omitempty"`
	Status        string             `bson:"status"`
	Description   string             `bson:"description,omitempty"`
	Image         string             `bson:"image,omitempty"`
	Price         PriceData          `bson:"price"`
}

// PriceData is the nested price object. Amount is kept as text.
type PriceData struct {
	Amount   string        `bson:"amount"`
	Currency string        `bson:"currency,omitempty"`
	Discount *DiscountData `bson:"discount,omitempty"`
}

// DiscountData is the optional discount attached to a price.
type DiscountData struct {
	Percentage       float64 `bson:"percentage"`
	DiscountedAmount float64 `bson:"discountedAmount"`
}
