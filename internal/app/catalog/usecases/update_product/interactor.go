package update_product

import (
	"context"

	"github.com/light-bringer/optics-service/internal/app/catalog/contracts"
	"github.com/light-bringer/optics-service/internal/app/catalog/domain"
	"github.com/light-bringer/optics-service/internal/pkg/ids"
)

// Request contains the product ID and the full replacement form.
type Request struct {
	ProductID string
	domain.Draft
}

// Interactor handles the update product use case.
type Interactor struct {
	repo contracts.ProductRepository
}

// NewInteractor creates a new update product interactor.
func NewInteractor(repo contracts.ProductRepository) *Interactor {
	return &Interactor{
		repo: repo,
	}
}

// Execute replaces every display field of the product. Concurrent updates
// are not serialized; the last write wins.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	id, err := ids.Parse(req.ProductID)
	if err != nil {
		return err
	}

	product, err := req.Build()
	if err != nil {
		return err
	}

	return i.repo.Replace(ctx, id, product)
}
