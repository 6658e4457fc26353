package list_orders

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/light-bringer/optics-service/internal/app/sales/contracts"
)

// Query lists orders.
type Query struct {
	repo contracts.OrderRepository
}

// NewQuery creates a new list orders query.
func NewQuery(repo contracts.OrderRepository) *Query {
	return &Query{
		repo: repo,
	}
}

// Execute returns the orders of email, or every order when email is empty.
func (q *Query) Execute(ctx context.Context, email string) ([]bson.M, error) {
	return q.repo.List(ctx, strings.TrimSpace(email))
}
