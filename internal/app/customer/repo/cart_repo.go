package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/light-bringer/optics-service/internal/app/customer/contracts"
	"github.com/light-bringer/optics-service/internal/app/customer/domain"
	"github.com/light-bringer/optics-service/internal/models/m_cart"
)

// CartRepo implements CartRepository for MongoDB.
type CartRepo struct {
	coll *mongo.Collection
}

// NewCartRepo creates a new CartRepo.
func NewCartRepo(db *mongo.Database) contracts.CartRepository {
	return &CartRepo{coll: db.Collection(m_cart.CollectionName)}
}

// Add inserts the cart line keyed by (email, productId) with a single upsert.
func (r *CartRepo) Add(ctx context.Context, item *domain.CartItem) (string, error) {
	candidate := primitive.NewObjectID()
	filter := bson.D{
		{Key: m_cart.Email, Value: item.Email},
		{Key: m_cart.ProductID, Value: item.ProductID},
	}
	update := bson.D{{Key: "$setOnInsert", Value: bson.D{
		{Key: m_cart.ID, Value: candidate},
		{Key: m_cart.ProductName, Value: item.ProductName},
		{Key: m_cart.BrandName, Value: item.BrandName},
		{Key: m_cart.Image, Value: item.Image},
		{Key: m_cart.Price, Value: item.Price},
		{Key: m_cart.Quantity, Value: item.Quantity},
	}}}

	got, err := upsertOnce(ctx, r.coll, filter, update)
	if err != nil {
		return "", fmt.Errorf("failed to add cart item: %w", err)
	}
	if got != candidate {
		return "", domain.NewCartConflict(got.Hex(), item.ProductID)
	}
	return candidate.Hex(), nil
}

func (r *CartRepo) ListByEmail(ctx context.Context, email string) ([]*contracts.CartItemDTO, error) {
	cursor, err := r.coll.Find(ctx, bson.D{{Key: m_cart.Email, Value: email}})
	if err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	var rows []m_cart.Data
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}

	out := make([]*contracts.CartItemDTO, 0, len(rows))
	for _, d := range rows {
		out = append(out, &contracts.CartItemDTO{
			ID:          d.ID.Hex(),
			Email:       d.Email,
			ProductID:   d.ProductID,
			ProductName: d.ProductName,
			BrandName:   d.BrandName,
			Image:       d.Image,
			Price:       d.Price,
			Quantity:    d.Quantity,
		})
	}
	return out, nil
}

func (r *CartRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: m_cart.ID, Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepo) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{{Key: m_cart.Email, Value: email}})
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}
	return res.DeletedCount, nil
}

// errIsNoDocuments reports a missing single document.
func errIsNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
