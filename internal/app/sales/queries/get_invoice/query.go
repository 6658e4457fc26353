package get_invoice

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/light-bringer/optics-service/internal/app/sales/contracts"
	"github.com/light-bringer/optics-service/internal/app/sales/domain"
	"github.com/light-bringer/optics-service/internal/pkg/ids"
)

// Request contains the order ID to invoice.
type Request struct {
	OrderID string
}

// Query builds an invoice for one order.
type Query struct {
	reader contracts.InvoiceReader
}

// NewQuery creates a new get invoice query.
func NewQuery(reader contracts.InvoiceReader) *Query {
	return &Query{
		reader: reader,
	}
}

// Execute returns the invoice. A malformed ID is reported the same way as a
// missing order.
func (q *Query) Execute(ctx context.Context, req *Request) (bson.M, error) {
	id, err := ids.Parse(req.OrderID)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}
	return q.reader.GetInvoice(ctx, id)
}
