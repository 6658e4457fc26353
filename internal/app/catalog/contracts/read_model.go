package contracts

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SortOrder selects the ordering of a product listing.
type SortOrder int

const (
	// SortNewest orders by insertion, most recent first.
	SortNewest SortOrder = iota
	// SortPriceAsc orders by numeric price, cheapest first.
	SortPriceAsc
)

// ListFilter defines the optional filters of a product listing.
// Empty strings and nil bounds mean "no restriction".
type ListFilter struct {
	Search   string
	Category string
	Gender   string
	Brand    string
	Material string
	Size     string
	Type     string
	MinPrice *float64
	MaxPrice *float64
	Sort     SortOrder
}

// PriceRange is the span of numeric prices in the catalog.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterOptions lists the values a shopper can filter on.
type FilterOptions struct {
	Genders    []string   `json:"genders"`
	Brands     []string   `json:"brands"`
	Materials  []string   `json:"materials"`
	Sizes      []string   `json:"sizes"`
	Types      []string   `json:"types"`
	Colors     []string   `json:"colors"`
	PriceRange PriceRange `json:"priceRange"`
}

// ReadModel defines the catalog queries.
// Listings return documents as stored, plus the derived priceNum field.
type ReadModel interface {
	// ListProducts returns every product matching filter, unpaginated.
	ListProducts(ctx context.Context, filter *ListFilter) ([]bson.M, error)

	// FilterOptions computes the distinct filter values and the price span.
	FilterOptions(ctx context.Context) (*FilterOptions, error)

	// GetProductByID returns one product document.
	GetProductByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
}
