package domain

// StockStatus is the availability shown on a product card.
type StockStatus string

const (
	StatusInStock    StockStatus = "in-stock"
	StatusOutOfStock StockStatus = "out-of-stock"
)

// ParseStockStatus validates a stock status. An empty value defaults to in-stock.
func ParseStockStatus(s string) (StockStatus, error) {
	switch StockStatus(s) {
	case "":
		return StatusInStock, nil
	case StatusInStock, StatusOutOfStock:
		return StockStatus(s), nil
	default:
		return "", ErrInvalidStockStatus
	}
}

// BannerStatus controls whether a banner is shown on the storefront.
type BannerStatus string

const (
	BannerAdded   BannerStatus = "added"
	BannerRemoved BannerStatus = "removed"
)

// ParseBannerStatus validates a banner status.
func ParseBannerStatus(s string) (BannerStatus, error) {
	switch BannerStatus(s) {
	case BannerAdded, BannerRemoved:
		return BannerStatus(s), nil
	default:
		return "", ErrInvalidBannerStatus
	}
}
