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
	"github.com/light-bringer/optics-service/internal/models/m_product"
	"github.com/light-bringer/optics-service/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for MongoDB.
type ReadModelImpl struct {
	db *mongo.Database
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(db *mongo.Database) contracts.ReadModel {
	return &ReadModelImpl{
		db: db,
	}
}

// ListProducts runs the product search pipeline.
func (rm *ReadModelImpl) ListProducts(ctx context.Context, filter *contracts.ListFilter) ([]bson.M, error) {
	products := []bson.M{}
	if err := query.Run(ctx, rm.db, ListProductsStatement(filter), &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// FilterOptions collects the distinct values of every filterable field and the price span.
func (rm *ReadModelImpl) FilterOptions(ctx context.Context) (*contracts.FilterOptions, error) {
	values := make(map[string][]string, len(filterFields))
	for _, field := range filterFields {
		distinct, err := rm.distinct(ctx, field)
		if err != nil {
			return nil, fmt.Errorf("failed to collect %s values: %w", field, err)
		}
		values[field] = distinct
	}

	var ranges []struct {
		Min *float64 `bson:"min"`
		Max *float64 `bson:"max"`
	}
	if err := query.Run(ctx, rm.db, PriceRangeStatement(), &ranges); err != nil {
		return nil, fmt.Errorf("failed to compute price range: %w", err)
	}

	opts := &contracts.FilterOptions{
		Genders:   values[m_product.Gender],
		Brands:    values[m_product.BrandName],
		Materials: values[m_product.FrameMaterial],
		Sizes:     values[m_product.FrameSize],
		Types:     values[m_product.FrameType],
		Colors:    values[m_product.Color],
	}
	if len(ranges) > 0 {
		if ranges[0].Min != nil {
			opts.PriceRange.Min = *ranges[0].Min
		}
		if ranges[0].Max != nil {
			opts.PriceRange.Max = *ranges[0].Max
		}
	}

	return opts, nil
}

// GetProductByID retrieves one product document.
func (rm *ReadModelImpl) GetProductByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var product bson.M
	err := rm.db.Collection(m_product.CollectionName).
		FindOne(ctx, bson.D{{Key: m_product.ID, Value: id}}).
		Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}
	return product, nil
}

// distinct returns the distinct values of field rendered as text.
func (rm *ReadModelImpl) distinct(ctx context.Context, field string) ([]string, error) {
	var rows []struct {
		Value interface{} `bson:"value"`
	}
	if err := query.Run(ctx, rm.db, DistinctValuesStatement(field), &rows); err != nil {
		return nil, err
	}

	values := make([]string, 0, len(rows))
	for _, row := range rows {
		switch v := row.Value.(type) {
		case string:
			values = append(values, v)
		default:
			values = append(values, fmt.Sprint(v))
		}
	}
	return values, nil
}
