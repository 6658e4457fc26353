package contracts

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/light-bringer/optics-service/internal/app/customer/domain"
)

// UserDTO is a user as returned to clients.
type UserDTO struct {
	ID              string `json:"_id"`
	Email           string `json:"email"`
	Name            string `json:"name,omitempty"`
	Role            string `json:"role,omitempty"`
	Image           string `json:"image,omitempty"`
	Mobile          string `json:"mobile,omitempty"`
	DiscountVoucher *int   `json:"discountVoucher,omitempty"`
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Register inserts the user unless the email is taken, in one store call.
	// A taken email yields a *domain.ConflictError.
	Register(ctx context.Context, user *domain.User) (string, error)

	// Search lists users whose name contains text, case-insensitively.
	// Empty text lists everyone.
	Search(ctx context.Context, text string) ([]*UserDTO, error)

	FindByEmail(ctx context.Context, email string) (*UserDTO, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role domain.Role) error
	SetVoucher(ctx context.Context, id primitive.ObjectID, voucher int) error

	// UpsertProfile sets name, mobile and image, creating the document when absent.
	UpsertProfile(ctx context.Context, id primitive.ObjectID, profile *domain.Profile) error
}
