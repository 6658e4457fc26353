package get_invoice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/light-bringer/optics-service/internal/app/sales/domain"
)

type fakeReader struct {
	invoices map[primitive.ObjectID]bson.M
	calls    int
}

func (f *fakeReader) GetInvoice(_ context.Context, id primitive.ObjectID) (bson.M, error) {
	f.calls++
	inv, ok := f.invoices[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return inv, nil
}

func TestGetInvoice(t *testing.T) {
	id := primitive.NewObjectID()
	reader := &fakeReader{invoices: map[primitive.ObjectID]bson.M{
		id: {"orderId": id, "itemCount": 2},
	}}
	q := NewQuery(reader)
	ctx := context.Background()

	inv, err := q.Execute(ctx, &Request{OrderID: id.Hex()})
	require.NoError(t, err)
	assert.Equal(t, 2, inv["itemCount"])

	_, err = q.Execute(ctx, &Request{OrderID: primitive.NewObjectID().Hex()})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	calls := reader.calls
	_, err = q.Execute(ctx, &Request{OrderID: "not-an-order"})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.Equal(t, calls, reader.calls)
}
