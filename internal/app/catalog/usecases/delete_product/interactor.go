package delete_product

import (
	"context"

	"github.com/light-bringer/optics-service/internal/app/catalog/contracts"
	"github.com/light-bringer/optics-service/internal/pkg/ids"
)

// Request contains the product ID to delete.
type Request struct {
	ProductID string
}

// Interactor handles the delete product use case.
type Interactor struct {
	repo contracts.ProductRepository
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(repo contracts.ProductRepository) *Interactor {
	return &Interactor{
		repo: repo,
	}
}

// Execute removes the product.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	id, err := ids.Parse(req.ProductID)
	if err != nil {
		return err
	}
	return i.repo.Delete(ctx, id)
}
