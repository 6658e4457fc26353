package admin_stats

import (
	"context"

	"github.com/light-bringer/optics-service/internal/app/report/contracts"
)

// Query computes the admin dashboard summary.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new admin stats query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute recomputes the dashboard counts.
func (q *Query) Execute(ctx context.Context) (*contracts.AdminStats, error) {
	return q.readModel.AdminStats(ctx)
}
