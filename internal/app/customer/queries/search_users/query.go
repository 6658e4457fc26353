package search_users

import (
	"context"
	"strings"

	"github.com/light-bringer/optics-service/internal/app/customer/contracts"
)

// Request carries the optional name search text.
type Request struct {
	Search string
}

// Query lists users.
type Query struct {
	repo contracts.UserRepository
}

// NewQuery creates a new search users query.
func NewQuery(repo contracts.UserRepository) *Query {
	return &Query{
		repo: repo,
	}
}

// Execute returns users whose name contains the search text.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.UserDTO, error) {
	return q.repo.Search(ctx, strings.TrimSpace(req.Search))
}
