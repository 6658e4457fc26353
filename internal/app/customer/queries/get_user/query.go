package get_user

import (
	"context"
	"errors"
	"strings"

	"github.com/light-bringer/optics-service/internal/app/customer/contracts"
	"github.com/light-bringer/optics-service/internal/app/customer/domain"
)

// Query looks a user up by email.
type Query struct {
	repo contracts.UserRepository
}

// NewQuery creates a new get user query.
func NewQuery(repo contracts.UserRepository) *Query {
	return &Query{
		repo: repo,
	}
}

// Execute returns the user registered under email.
func (q *Query) Execute(ctx context.Context, email string) (*contracts.UserDTO, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.ErrEmptyEmail
	}
	return q.repo.FindByEmail(ctx, email)
}

// IsAdmin reports whether the user registered under email holds the Admin role.
// Unknown emails are not admins.
func (q *Query) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := q.Execute(ctx, email)
	switch {
	case err == nil:
		return u.Role == string(domain.RoleAdmin), nil
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrEmptyEmail):
		return false, nil
	default:
		return false, err
	}
}
