package list_patients

import (
	"context"

	"github.com/light-bringer/optics-service/internal/app/customer/contracts"
	"github.com/light-bringer/optics-service/internal/pkg/ids"
)

// Query reads patient records.
type Query struct {
	repo contracts.PatientRepository
}

// NewQuery creates a new list patients query.
func NewQuery(repo contracts.PatientRepository) *Query {
	return &Query{
		repo: repo,
	}
}

// Execute returns every patient, newest first.
func (q *Query) Execute(ctx context.Context) ([]*contracts.PatientDTO, error) {
	return q.repo.List(ctx)
}

// Get returns one patient.
func (q *Query) Get(ctx context.Context, patientID string) (*contracts.PatientDTO, error) {
	id, err := ids.Parse(patientID)
	if err != nil {
		return nil, err
	}
	return q.repo.GetByID(ctx, id)
}
