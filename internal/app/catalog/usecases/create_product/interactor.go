package create_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/optics-service/internal/app/catalog/contracts"
	"github.com/light-bringer/optics-service/internal/app/catalog/domain"
)

// Request contains the data needed to create a product.
type Request struct {
	domain.Draft
}

// Interactor handles the create product use case.
type Interactor struct {
	repo contracts.ProductRepository
}

// NewInteractor creates a new create product interactor.
func NewInteractor(repo contracts.ProductRepository) *Interactor {
	return &Interactor{
		repo: repo,
	}
}

// Execute validates and stores a new product, returning its ID.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	product, err := req.Build()
	if err != nil {
		return "", err
	}

	id, err := i.repo.Insert(ctx, product)
	if err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}
	return id, nil
}
