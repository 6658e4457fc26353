package contracts

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/light-bringer/optics-service/internal/app/customer/domain"
)

// EyeDTO is a single-eye refraction.
type EyeDTO struct {
	Sphere   string `json:"sphere,omitempty"`
	Cylinder string `json:"cylinder,omitempty"`
	Axis     string `json:"axis,omitempty"`
	Add      string `json:"add,omitempty"`
}

// PrescriptionDTO holds both eyes.
type PrescriptionDTO struct {
	RightEye EyeDTO `json:"rightEye"`
	LeftEye  EyeDTO `json:"leftEye"`
}

// PatientDTO is a patient as returned to clients.
type PatientDTO struct {
	ID           string          `json:"_id"`
	Name         string          `json:"name"`
	Email        string          `json:"email,omitempty"`
	Phone        string          `json:"phone"`
	Age          int             `json:"age,omitempty"`
	Gender       string          `json:"gender,omitempty"`
	Prescription PrescriptionDTO `json:"prescription"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// PatientRepository defines the interface for patient persistence.
type PatientRepository interface {
	Insert(ctx context.Context, patient *domain.Patient) (string, error)

	// List returns patients, newest first.
	List(ctx context.Context) ([]*PatientDTO, error)

	GetByID(ctx context.Context, id primitive.ObjectID) (*PatientDTO, error)

	// Update overwrites every field except createdAt.
	Update(ctx context.Context, id primitive.ObjectID, patient *domain.Patient) error

	Delete(ctx context.Context, id primitive.ObjectID) error
}
