package m_patient

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Data represents the stored shape of a patient document.
type Data struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email,omitempty"`
	Phone        string             `bson:"phone"`
	Age          int                `bson:"age,omitempty"`
	Gender       string             `bson:"gender,omitempty"`
	Prescription PrescriptionData   `bson:"prescription"`
	Notes        string             `bson:"notes,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

// PrescriptionData holds the refraction values for both eyes.
type PrescriptionData struct {
	RightEye EyeData `bson:"rightEye"`
	LeftEye  EyeData `bson:"leftEye"`
}

// EyeData is a single-eye refraction.
type EyeData struct {
	Sphere   string `bson:"sphere,omitempty"`
	Cylinder string `bson:"cylinder,omitempty"`
	Axis     string `bson:"axis,omitempty"`
	Add      string `bson:"add,omitempty"`
}
