package register_user

import (
	"context"

	"github.com/light-bringer/optics-service/internal/app/customer/contracts"
	"github.com/light-bringer/optics-service/internal/app/customer/domain"
)

// Request contains the account being registered.
type Request struct {
	Email  string
	Name   string
	Role   string
	Image  string
	Mobile string
}

// Interactor handles user registration.
type Interactor struct {
	repo contracts.UserRepository
}

// NewInteractor creates a new register user interactor.
func NewInteractor(repo contracts.UserRepository) *Interactor {
	return &Interactor{
		repo: repo,
	}
}

// Execute registers the user. An existing email yields *domain.ConflictError.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	u := &domain.User{
		Email:  req.Email,
		Name:   req.Name,
		Role:   domain.Role(req.Role),
		Image:  req.Image,
		Mobile: req.Mobile,
	}
	if err := u.Validate(); err != nil {
		return "", err
	}
	return i.repo.Register(ctx, u)
}
