package add_to_cart

import (
	"context"

	"github.com/light-bringer/optics-service/internal/app/customer/contracts"
	"github.com/light-bringer/optics-service/internal/app/customer/domain"
)

// Request contains the cart line to add.
type Request struct {
	Email       string
	ProductID   string
	ProductName string
	BrandName   string
	Image       string
	Price       float64
	Quantity    int
}

// Interactor handles adding products to a cart.
type Interactor struct {
	repo contracts.CartRepository
}

// NewInteractor creates a new add to cart interactor.
func NewInteractor(repo contracts.CartRepository) *Interactor {
	return &Interactor{
		repo: repo,
	}
}

// Execute adds the line. A product already in the cart yields *domain.ConflictError.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	item := &domain.CartItem{
		Email:       req.Email,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		BrandName:   req.BrandName,
		Image:       req.Image,
		Price:       req.Price,
		Quantity:    req.Quantity,
	}
	if err := item.Validate(); err != nil {
		return "", err
	}
	return i.repo.Add(ctx, item)
}
