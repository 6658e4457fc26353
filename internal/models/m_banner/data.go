package m_banner

import "go.mongodb.org/mongo-driver/bson/primitive"

// Data represents the stored shape of a banner document.
type Data struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Title  string             `bson:"title,omitempty"`
	Image  string             `bson:"image"`
	Link   string             `bson:"link,omitempty"`
	Status string             `bson:"status"`
}
