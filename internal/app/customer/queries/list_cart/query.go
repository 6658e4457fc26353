package list_cart

import (
	"context"
	"strings"

	"github.com/light-bringer/optics-service/internal/app/customer/contracts"
	"github.com/light-bringer/optics-service/internal/app/customer/domain"
)

// Query lists a customer's cart.
type Query struct {
	repo contracts.CartRepository
}

// NewQuery creates a new list cart query.
func NewQuery(repo contracts.CartRepository) *Query {
	return &Query{
		repo: repo,
	}
}

// Execute returns the cart lines of email.
func (q *Query) Execute(ctx context.Context, email string) ([]*contracts.CartItemDTO, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.ErrEmptyEmail
	}
	return q.repo.ListByEmail(ctx, email)
}
