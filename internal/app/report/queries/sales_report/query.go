package sales_report

import (
	"context"

	"github.com/light-bringer/optics-service/internal/app/report/contracts"
)

// Query computes the sales report.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new sales report query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute recomputes the sales report. Revenue only counts Paid orders.
func (q *Query) Execute(ctx context.Context) (*contracts.SalesReport, error) {
	return q.readModel.SalesReport(ctx)
}
