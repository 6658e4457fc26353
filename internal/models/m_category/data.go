package m_category

import "go.mongodb.org/mongo-driver/bson/primitive"

// Data represents the stored shape of a category document.
type Data struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Image       string             `bson:"image"`
	Description string             `bson:"description"`
}
