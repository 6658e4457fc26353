// Package manage_patients groups the patient record use cases.
package manage_patients

import (
	"context"

	"github.com/light-bringer/optics-service/internal/app/customer/contracts"
	"github.com/light-bringer/optics-service/internal/app/customer/domain"
	"github.com/light-bringer/optics-service/internal/pkg/clock"
	"github.com/light-bringer/optics-service/internal/pkg/ids"
)

// Request is the patient form.
type Request struct {
	Name         string
	Email        string
	Phone        string
	Age          int
	Gender       string
	Prescription domain.Prescription
	Notes        string
}

func (r *Request) patient() (*domain.Patient, error) {
	p := &domain.Patient{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Age:          r.Age,
		Gender:       r.Gender,
		Prescription: r.Prescription,
		Notes:        r.Notes,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Interactor handles patient creation, update and removal.
type Interactor struct {
	repo  contracts.PatientRepository
	clock clock.Clock
}

// NewInteractor creates a new manage patients interactor.
func NewInteractor(repo contracts.PatientRepository, clock clock.Clock) *Interactor {
	return &Interactor{
		repo:  repo,
		clock: clock,
	}
}

// Create stores a new patient stamped with the current time.
func (i *Interactor) Create(ctx context.Context, req *Request) (string, error) {
	p, err := req.patient()
	if err != nil {
		return "", err
	}
	p.CreatedAt = i.clock.Now()
	return i.repo.Insert(ctx, p)
}

// Update overwrites the patient record.
func (i *Interactor) Update(ctx context.Context, patientID string, req *Request) error {
	id, err := ids.Parse(patientID)
	if err != nil {
		return err
	}
	p, err := req.patient()
	if err != nil {
		return err
	}
	return i.repo.Update(ctx, id, p)
}

// Delete removes the patient.
func (i *Interactor) Delete(ctx context.Context, patientID string) error {
	id, err := ids.Parse(patientID)
	if err != nil {
		return err
	}
	return i.repo.Delete(ctx, id)
}
