package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/light-bringer/optics-service/internal/app/catalog/contracts"
	"github.com/light-bringer/optics-service/internal/app/catalog/domain"
	"github.com/light-bringer/optics-service/internal/models/m_product"
)

// ProductRepo implements ProductRepository for MongoDB.
type ProductRepo struct {
	coll  *mongo.Collection
	model *m_product.Model
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(db *mongo.Database) contracts.ProductRepository {
	return &ProductRepo{
		coll:  db.Collection(m_product.CollectionName),
		model: m_product.NewModel(),
	}
}

// Insert stores a new product.
func (r *ProductRepo) Insert(ctx context.Context, product *domain.Product) (string, error) {
	res, err := r.coll.InsertOne(ctx, domainToData(product))
	if err != nil {
		return "", fmt.Errorf("failed to insert product: %w", err)
	}
	return insertedHex(res), nil
}

// Replace overwrites the display fields of an existing product.
func (r *ProductRepo) Replace(ctx context.Context, id primitive.ObjectID, product *domain.Product) error {
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: m_product.ID, Value: id}}, r.model.ReplaceDoc(domainToData(product)))
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete removes a product.
func (r *ProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: m_product.ID, Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// domainToData converts a domain product to its stored shape.
func domainToData(p *domain.Product) *m_product.Data {
	data := &m_product.Data{
		ProductName:   p.Name,
		BrandName:     p.Brand,
		Category:      p.Category,
		Gender:        p.Gender,
		Origin:        p.Origin,
		FrameMaterial: p.FrameMaterial,
		FrameSize:     p.FrameSize,
		FrameType:     p.FrameType,
		Color:         p.Color,
		LensMaterial:  p.LensMaterial,
		Prescription:  p.Prescription,
		Dimensions:    p.Dimensions,
		Warranty:      p.Warranty,
		Status:        string(p.Status),
		Description:   p.Description,
		Image:         p.Image,
		Price: m_product.PriceData{
			Amount:   p.Price.AmountText(),
			Currency: p.Price.Currency,
		},
	}

	if d := p.Price.Discount; d != nil {
		pct, _ := d.Percentage.Float64()
		discounted, _ := d.DiscountedAmount.Float64()
		data.Price.Discount = &m_product.DiscountData{
			Percentage:       pct,
			DiscountedAmount: discounted,
		}
	}

	return data
}

// insertedHex renders the generated identifier of an insert.
func insertedHex(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(res.InsertedID)
}
