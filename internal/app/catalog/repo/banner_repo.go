package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/light-bringer/optics-service/internal/app/catalog/contracts"
	"github.com/light-bringer/optics-service/internal/app/catalog/domain"
	"github.com/light-bringer/optics-service/internal/models/m_banner"
)

// BannerRepo implements BannerRepository for MongoDB.
type BannerRepo struct {
	coll *mongo.Collection
}

// NewBannerRepo creates a new BannerRepo.
func NewBannerRepo(db *mongo.Database) contracts.BannerRepository {
	return &BannerRepo{coll: db.Collection(m_banner.CollectionName)}
}

func (r *BannerRepo) Insert(ctx context.Context, b *domain.Banner) (string, error) {
	res, err := r.coll.InsertOne(ctx, &m_banner.Data{
		Title:  b.Title,
		Image:  b.Image,
		Link:   b.Link,
		Status: string(b.Status),
	})
	if err != nil {
		return "", fmt.Errorf("failed to insert banner: %w", err)
	}
	return insertedHex(res), nil
}

func (r *BannerRepo) List(ctx context.Context) ([]*contracts.BannerDTO, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	var rows []m_banner.Data
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode banners: %w", err)
	}

	out := make([]*contracts.BannerDTO, 0, len(rows))
	for _, d := range rows {
		out = append(out, &contracts.BannerDTO{
			ID:     d.ID.Hex(),
			Title:  d.Title,
			Image:  d.Image,
			Link:   d.Link,
			Status: d.Status,
		})
	}
	return out, nil
}

func (r *BannerRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.BannerStatus) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: m_banner.ID, Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: m_banner.Status, Value: string(status)}}}},
	)
	if err != nil {
		return fmt.Errorf("failed to update banner: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBannerNotFound
	}
	return nil
}

func (r *BannerRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: m_banner.ID, Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBannerNotFound
	}
	return nil
}
