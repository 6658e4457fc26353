// Package manage_categories groups the category admin use cases.
package manage_categories

import (
	"context"

	"github.com/light-bringer/optics-service/internal/app/catalog/contracts"
	"github.com/light-bringer/optics-service/internal/app/catalog/domain"
	"github.com/light-bringer/optics-service/internal/pkg/ids"
)

// Request is the category form.
type Request struct {
	Name        string
	Image       string
	Description string
}

func (r *Request) category() (*domain.Category, error) {
	c := &domain.Category{Name: r.Name, Image: r.Image, Description: r.Description}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Interactor handles category creation, lookup, update and removal.
type Interactor struct {
	repo contracts.CategoryRepository
}

// NewInteractor creates a new category interactor.
func NewInteractor(repo contracts.CategoryRepository) *Interactor {
	return &Interactor{
		repo: repo,
	}
}

// Create stores a new category.
func (i *Interactor) Create(ctx context.Context, req *Request) (string, error) {
	c, err := req.category()
	if err != nil {
		return "", err
	}
	return i.repo.Insert(ctx, c)
}

// List returns every category.
func (i *Interactor) List(ctx context.Context) ([]*contracts.CategoryDTO, error) {
	return i.repo.List(ctx)
}

// Get returns one category.
func (i *Interactor) Get(ctx context.Context, categoryID string) (*contracts.CategoryDTO, error) {
	id, err := ids.Parse(categoryID)
	if err != nil {
		return nil, err
	}
	return i.repo.GetByID(ctx, id)
}

// Update overwrites the category fields.
func (i *Interactor) Update(ctx context.Context, categoryID string, req *Request) error {
	id, err := ids.Parse(categoryID)
	if err != nil {
		return err
	}
	c, err := req.category()
	if err != nil {
		return err
	}
	return i.repo.Update(ctx, id, c)
}

// Delete removes the category. Products keep their category text.
func (i *Interactor) Delete(ctx context.Context, categoryID string) error {
	id, err := ids.Parse(categoryID)
	if err != nil {
		return err
	}
	return i.repo.Delete(ctx, id)
}
