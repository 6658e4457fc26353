// Package manage_banners groups the banner admin use cases.
package manage_banners

import (
	"context"

	"github.com/light-bringer/optics-service/internal/app/catalog/contracts"
	"github.com/light-bringer/optics-service/internal/app/catalog/domain"
	"github.com/light-bringer/optics-service/internal/pkg/ids"
)

// Request is the banner form.
type Request struct {
	Title  string
	Image  string
	Link   string
	Status string
}

// Interactor handles banner creation, listing, status changes and removal.
type Interactor struct {
	repo contracts.BannerRepository
}

// NewInteractor creates a new banner interactor.
func NewInteractor(repo contracts.BannerRepository) *Interactor {
	return &Interactor{
		repo: repo,
	}
}

// Create stores a new banner.
func (i *Interactor) Create(ctx context.Context, req *Request) (string, error) {
	b := &domain.Banner{
		Title:  req.Title,
		Image:  req.Image,
		Link:   req.Link,
		Status: domain.BannerStatus(req.Status),
	}
	if err := b.Validate(); err != nil {
		return "", err
	}
	return i.repo.Insert(ctx, b)
}

// List returns every banner.
func (i *Interactor) List(ctx context.Context) ([]*contracts.BannerDTO, error) {
	return i.repo.List(ctx)
}

// SetStatus shows or hides a banner.
func (i *Interactor) SetStatus(ctx context.Context, bannerID, status string) error {
	id, err := ids.Parse(bannerID)
	if err != nil {
		return err
	}
	s, err := domain.ParseBannerStatus(status)
	if err != nil {
		return err
	}
	return i.repo.UpdateStatus(ctx, id, s)
}

// Delete removes a banner.
func (i *Interactor) Delete(ctx context.Context, bannerID string) error {
	id, err := ids.Parse(bannerID)
	if err != nil {
		return err
	}
	return i.repo.Delete(ctx, id)
}
