package repo

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/light-bringer/optics-service/internal/app/catalog/contracts"
	"github.com/light-bringer/optics-service/internal/models/m_product"
	"github.com/light-bringer/optics-service/internal/pkg/query"
)

// filterFields maps each filter-option list to the product field it is collected from.
var filterFields = []string{
	m_product.Gender,
	m_product.BrandName,
	m_product.FrameMaterial,
	m_product.FrameSize,
	m_product.FrameType,
	m_product.Color,
}

// ListProductsStatement builds the product search pipeline:
// attribute match, projection with the coerced price, price range, sort.
func ListProductsStatement(filter *contracts.ListFilter) query.Statement {
	var search query.Condition
	if filter.Search != "" {
		search = query.Or(
			query.ContainsFold(m_product.ProductName, filter.Search),
			query.ContainsFold(m_product.BrandName, filter.Search),
		)
	}

	projection := query.Include(m_product.DisplayFields()...)
	projection = append(projection, bson.E{Key: m_product.PriceNum, Value: query.ToDouble(m_product.PriceAmount)})

	b := query.From(m_product.CollectionName).
		Match(
			search,
			eqIfSet(m_product.Category, filter.Category),
			eqIfSet(m_product.Gender, filter.Gender),
			eqIfSet(m_product.BrandName, filter.Brand),
			eqIfSet(m_product.FrameMaterial, filter.Material),
			eqIfSet(m_product.FrameSize, filter.Size),
			eqIfSet(m_product.FrameType, filter.Type),
		).
		Project(projection).
		Match(query.Range(m_product.PriceNum, filter.MinPrice, filter.MaxPrice))

	if filter.Sort == contracts.SortPriceAsc {
		b = b.Sort(query.By(m_product.PriceNum, query.Asc))
	} else {
		b = b.Sort(query.By(m_product.ID, query.Desc))
	}

	return b.Build()
}

// DistinctValuesStatement collects the distinct non-blank values of field
// as documents of the form {value: ...}, sorted ascending.
func DistinctValuesStatement(field string) query.Statement {
	return query.From(m_product.CollectionName).
		Group(query.Ref(field)).
		Match(query.NotIn("_id", nil, "")).
		Sort(query.By("_id", query.Asc)).
		Project(bson.D{{Key: "_id", Value: 0}, {Key: "value", Value: "$_id"}}).
		Build()
}

// PriceRangeStatement computes the minimum and maximum coerced price over
// products that have a price. Unconvertible amounts are ignored by $min/$max.
func PriceRangeStatement() query.Statement {
	return query.From(m_product.CollectionName).
		Match(query.Exists(m_product.PriceAmount)).
		Project(bson.D{{Key: m_product.PriceNum, Value: query.ToDouble(m_product.PriceAmount)}}).
		Group(nil,
			query.Min("min", query.Ref(m_product.PriceNum)),
			query.Max("max", query.Ref(m_product.PriceNum)),
		).
		Build()
}

func eqIfSet(field, value string) query.Condition {
	if value == "" {
		return nil
	}
	return query.Eq(field, value)
}
