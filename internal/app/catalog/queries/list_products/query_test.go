package list_products

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/light-bringer/optics-service/internal/app/catalog/contracts"
)

type fakeReadModel struct {
	got    *contracts.ListFilter
	calls  int
	result []bson.M
	err    error
}

func (f *fakeReadModel) ListProducts(_ context.Context, filter *contracts.ListFilter) ([]bson.M, error) {
	f.calls++
	f.got = filter
	return f.result, f.err
}

func (f *fakeReadModel) FilterOptions(context.Context) (*contracts.FilterOptions, error) {
	return nil, nil
}

func (f *fakeReadModel) GetProductByID(context.Context, primitive.ObjectID) (bson.M, error) {
	return nil, nil
}

func TestExecute_MapsParameters(t *testing.T) {
	rm := &fakeReadModel{result: []bson.M{{"productName": "Ray-X"}}}
	q := NewQuery(rm)

	out, err := q.Execute(context.Background(), &Request{
		Search:   "  ray ",
		Brand:    "Zeta",
		Material: "Metal",
		Size:     "M",
		Type:     "Full Rim",
		MinPrice: "10",
		MaxPrice: "99.5",
		Sort:     "asc",
	})
	require.NoError(t, err)
	assert.Len(t, out, 1)

	require.NotNil(t, rm.got)
	assert.Equal(t, "  ray ", rm.got.Search, "search text is matched as given")
	assert.Equal(t, "Zeta", rm.got.Brand)
	assert.Equal(t, "Metal", rm.got.Material)
	assert.Equal(t, "M", rm.got.Size)
	assert.Equal(t, "Full Rim", rm.got.Type)
	require.NotNil(t, rm.got.MinPrice)
	require.NotNil(t, rm.got.MaxPrice)
	assert.Equal(t, 10.0, *rm.got.MinPrice)
	assert.Equal(t, 99.5, *rm.got.MaxPrice)
	assert.Equal(t, contracts.SortPriceAsc, rm.got.Sort)
}

func TestExecute_SortDefaultsToNewest(t *testing.T) {
	for _, sort := range []string{"", "desc", "price"} {
		t.Run("sort="+sort, func(t *testing.T) {
			rm := &fakeReadModel{}
			_, err := NewQuery(rm).Execute(context.Background(), &Request{Sort: sort})
			require.NoError(t, err)
			assert.Equal(t, contracts.SortNewest, rm.got.Sort)
			assert.Nil(t, rm.got.MinPrice)
			assert.Nil(t, rm.got.MaxPrice)
		})
	}
}

func TestExecute_InvalidBoundMatchesNothing(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"min", &Request{MinPrice: "cheap"}},
		{"max", &Request{MaxPrice: "12abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := &fakeReadModel{}
			out, err := NewQuery(rm).Execute(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Empty(t, out)
			assert.NotNil(t, out)
			assert.Equal(t, 0, rm.calls)
		})
	}
}

func TestExecute_PropagatesStoreError(t *testing.T) {
	rm := &fakeReadModel{err: errors.New("boom")}
	_, err := NewQuery(rm).Execute(context.Background(), &Request{})
	assert.Error(t, err)
}
