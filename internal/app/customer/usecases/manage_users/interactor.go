// Package manage_users groups the account changes made after registration.
package manage_users

import (
	"context"

	"github.com/light-bringer/optics-service/internal/app/customer/contracts"
	"github.com/light-bringer/optics-service/internal/app/customer/domain"
	"github.com/light-bringer/optics-service/internal/pkg/ids"
)

// Interactor handles role, voucher and profile updates.
type Interactor struct {
	repo contracts.UserRepository
}

// NewInteractor creates a new manage users interactor.
func NewInteractor(repo contracts.UserRepository) *Interactor {
	return &Interactor{
		repo: repo,
	}
}

// SetRole changes a user's role.
func (i *Interactor) SetRole(ctx context.Context, userID, role string) error {
	id, err := ids.Parse(userID)
	if err != nil {
		return err
	}
	r, err := domain.ParseRole(role)
	if err != nil {
		return err
	}
	return i.repo.SetRole(ctx, id, r)
}

// SetVoucher grants a discount voucher percentage.
func (i *Interactor) SetVoucher(ctx context.Context, userID string, voucher int) error {
	id, err := ids.Parse(userID)
	if err != nil {
		return err
	}
	if err := domain.ValidateVoucher(voucher); err != nil {
		return err
	}
	return i.repo.SetVoucher(ctx, id, voucher)
}

// UpdateProfile sets the self-service profile fields, creating the record if needed.
func (i *Interactor) UpdateProfile(ctx context.Context, userID string, p *domain.Profile) error {
	id, err := ids.Parse(userID)
	if err != nil {
		return err
	}
	return i.repo.UpsertProfile(ctx, id, p)
}
