package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/light-bringer/optics-service/internal/app/catalog/contracts"
	"github.com/light-bringer/optics-service/internal/app/catalog/domain"
	"github.com/light-bringer/optics-service/internal/models/m_category"
)

// CategoryRepo implements CategoryRepository for MongoDB.
type CategoryRepo struct {
	coll *mongo.Collection
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo(db *mongo.Database) contracts.CategoryRepository {
	return &CategoryRepo{coll: db.Collection(m_category.CollectionName)}
}

func (r *CategoryRepo) Insert(ctx context.Context, c *domain.Category) (string, error) {
	res, err := r.coll.InsertOne(ctx, &m_category.Data{
		Name:        c.Name,
		Image:       c.Image,
		Description: c.Description,
	})
	if err != nil {
		return "", fmt.Errorf("failed to insert category: %w", err)
	}
	return insertedHex(res), nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]*contracts.CategoryDTO, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	var rows []m_category.Data
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	out := make([]*contracts.CategoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, categoryToDTO(&rows[i]))
	}
	return out, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*contracts.CategoryDTO, error) {
	var data m_category.Data
	if err := r.coll.FindOne(ctx, bson.D{{Key: m_category.ID, Value: id}}).Decode(&data); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to read category: %w", err)
	}
	return categoryToDTO(&data), nil
}

func (r *CategoryRepo) Update(ctx context.Context, id primitive.ObjectID, c *domain.Category) error {
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: m_category.ID, Value: id}}, bson.D{{Key: "$set", Value: bson.D{
		{Key: m_category.Name, Value: c.Name},
		{Key: m_category.Image, Value: c.Image},
		{Key: m_category.Description, Value: c.Description},
	}}})
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: m_category.ID, Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func categoryToDTO(d *m_category.Data) *contracts.CategoryDTO {
	return &contracts.CategoryDTO{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Image:       d.Image,
		Description: d.Description,
	}
}
