package contracts

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/light-bringer/optics-service/internal/app/catalog/domain"
)

// CategoryDTO is a category as returned to clients.
type CategoryDTO struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	Insert(ctx context.Context, category *domain.Category) (string, error)
	List(ctx context.Context) ([]*CategoryDTO, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*CategoryDTO, error)
	Update(ctx context.Context, id primitive.ObjectID, category *domain.Category) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// BannerDTO is a banner as returned to clients.
type BannerDTO struct {
	ID     string `json:"_id"`
	Title  string `json:"title,omitempty"`
	Image  string `json:"image"`
	Link   string `json:"link,omitempty"`
	Status string `json:"status"`
}

// BannerRepository defines the interface for banner persistence.
type BannerRepository interface {
	Insert(ctx context.Context, banner *domain.Banner) (string, error)
	List(ctx context.Context) ([]*BannerDTO, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.BannerStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
