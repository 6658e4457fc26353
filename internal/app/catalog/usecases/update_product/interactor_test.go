package update_product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/light-bringer/optics-service/internal/app/catalog/domain"
	"github.com/light-bringer/optics-service/internal/pkg/ids"
)

type fakeRepo struct {
	replaced map[primitive.ObjectID]*domain.Product
}

func (f *fakeRepo) Insert(context.Context, *domain.Product) (string, error) {
	return "", nil
}

func (f *fakeRepo) Replace(_ context.Context, id primitive.ObjectID, p *domain.Product) error {
	if _, ok := f.replaced[id]; !ok {
		return domain.ErrProductNotFound
	}
	f.replaced[id] = p
	return nil
}

func (f *fakeRepo) Delete(context.Context, primitive.ObjectID) error {
	return nil
}

func draft() domain.Draft {
	return domain.Draft{
		Name:        "Ray-X",
		Brand:       "Zeta",
		Category:    "sunglasses",
		PriceAmount: "150",
	}
}

func TestUpdateProduct(t *testing.T) {
	existing := primitive.NewObjectID()

	t.Run("replaces an existing product", func(t *testing.T) {
		repo := &fakeRepo{replaced: map[primitive.ObjectID]*domain.Product{existing: nil}}
		err := NewInteractor(repo).Execute(context.Background(), &Request{ProductID: existing.Hex(), Draft: draft()})
		require.NoError(t, err)
		require.NotNil(t, repo.replaced[existing])
		assert.Equal(t, "150", repo.replaced[existing].Price.AmountText())
	})

	t.Run("malformed id is rejected before the store", func(t *testing.T) {
		repo := &fakeRepo{replaced: map[primitive.ObjectID]*domain.Product{existing: nil}}
		err := NewInteractor(repo).Execute(context.Background(), &Request{ProductID: "not-an-id", Draft: draft()})
		assert.ErrorIs(t, err, ids.ErrInvalidID)
		assert.Nil(t, repo.replaced[existing])
	})

	t.Run("missing product", func(t *testing.T) {
		repo := &fakeRepo{replaced: map[primitive.ObjectID]*domain.Product{}}
		err := NewInteractor(repo).Execute(context.Background(), &Request{ProductID: existing.Hex(), Draft: draft()})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}
