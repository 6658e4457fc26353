// Package ids validates the opaque document identifiers handed out by the store.
package ids

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned for identifiers that are not 24-character hex ObjectIDs.
var ErrInvalidID = errors.New("invalid id")

// Parse converts a hex identifier into an ObjectID.
func Parse(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}
