package domain

import (
	"strings"
	"time"
)

// Patient is an eye-test record kept by the shop.
type Patient struct {
	Name         string
	Email        string
	Phone        string
	Age          int
	Gender       string
	Prescription Prescription
	Notes        string
	CreatedAt    time.Time
}

// Prescription holds the refraction of both eyes.
type Prescription struct {
	RightEye Eye
	LeftEye  Eye
}

// Eye is a single-eye refraction as written on the test card.
type Eye struct {
	Sphere   string
	Cylinder string
	Axis     string
	Add      string
}

// Validate checks the patient record.
func (p *Patient) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrEmptyPatientName
	}
	if p.Age < 0 {
		return ErrInvalidAge
	}
	return nil
}
