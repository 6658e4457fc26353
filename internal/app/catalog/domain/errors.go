package domain

import "errors"

// Domain errors as sentinel values
var (
	// Product errors
	ErrProductNotFound        = errors.New("product not found")
	ErrEmptyName              = errors.New("product name cannot be empty")
	ErrInvalidCategory        = errors.New("product category cannot be empty")
	ErrInvalidPrice           = errors.New("product price must be a non-negative number")
	ErrInvalidDiscountPercent = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidStockStatus     = errors.New("unknown stock status")

	// Category errors
	ErrCategoryNotFound  = errors.New("category not found")
	ErrEmptyCategoryName = errors.New("category name cannot be empty")

	// Banner errors
	ErrBannerNotFound      = errors.New("banner not found")
	ErrEmptyBannerImage    = errors.New("banner image cannot be empty")
	ErrInvalidBannerStatus = errors.New("unknown banner status")
)
