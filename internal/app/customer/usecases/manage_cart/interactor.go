// Package manage_cart removes cart lines.
package manage_cart

import (
	"context"
	"strings"

	"github.com/light-bringer/optics-service/internal/app/customer/contracts"
	"github.com/light-bringer/optics-service/internal/app/customer/domain"
	"github.com/light-bringer/optics-service/internal/pkg/ids"
)

// Interactor handles cart line removal.
type Interactor struct {
	repo contracts.CartRepository
}

// NewInteractor creates a new manage cart interactor.
func NewInteractor(repo contracts.CartRepository) *Interactor {
	return &Interactor{
		repo: repo,
	}
}

// Remove deletes one cart line.
func (i *Interactor) Remove(ctx context.Context, itemID string) error {
	id, err := ids.Parse(itemID)
	if err != nil {
		return err
	}
	return i.repo.Delete(ctx, id)
}

// Clear empties the cart of email and returns the number of lines removed.
func (i *Interactor) Clear(ctx context.Context, email string) (int64, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return 0, domain.ErrEmptyEmail
	}
	return i.repo.DeleteByEmail(ctx, email)
}
