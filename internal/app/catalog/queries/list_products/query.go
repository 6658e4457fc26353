package list_products

import (
	"context"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/light-bringer/optics-service/internal/app/catalog/contracts"
)

// Request carries the raw query-string parameters of a product search.
type Request struct {
	Search   string
	Category string
	Gender   string
	Brand    string
	Material string
	Size     string
	Type     string
	MinPrice string
	MaxPrice string
	Sort     string
}

// Query handles the product listing.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute returns every product matching the request.
// A price bound that is not a number matches nothing.
func (q *Query) Execute(ctx context.Context, req *Request) ([]bson.M, error) {
	minPrice, ok := parseBound(req.MinPrice)
	if !ok {
		return []bson.M{}, nil
	}
	maxPrice, ok := parseBound(req.MaxPrice)
	if !ok {
		return []bson.M{}, nil
	}

	filter := &contracts.ListFilter{
		Search:   req.Search,
		Category: req.Category,
		Gender:   req.Gender,
		Brand:    req.Brand,
		Material: req.Material,
		Size:     req.Size,
		Type:     req.Type,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Sort:     contracts.SortNewest,
	}
	if req.Sort == "asc" {
		filter.Sort = contracts.SortPriceAsc
	}

	return q.readModel.ListProducts(ctx, filter)
}

// parseBound parses an optional price bound. Empty text is unbounded.
func parseBound(s string) (*float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}
