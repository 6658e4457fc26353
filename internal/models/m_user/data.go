package m_user

import "go.mongodb.org/mongo-driver/bson/primitive"

// Data represents the stored shape of a user document.
type Data struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Email           string             `bson:"email"`
	Name            string             `bson:"name,omitempty"`
	Role            string             `bson:"role,omitempty"`
	Image           string             `bson:"image,omitempty"`
	Mobile          string             `bson:"mobile,omitempty"`
	DiscountVoucher *int               `bson:"discountVoucher,omitempty"`
}
