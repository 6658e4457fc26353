package contracts

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// BannerCounts summarizes storefront banners.
type BannerCounts struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

// ProductCounts summarizes the catalog by stock status.
type ProductCounts struct {
	Total      int64 `json:"total"`
	InStock    int64 `json:"inStock"`
	OutOfStock int64 `json:"outOfStock"`
}

// UserCounts summarizes accounts.
type UserCounts struct {
	Total  int64 `json:"total"`
	Admins int64 `json:"admins"`
}

// CategoryCount is the number of products filed under one category.
type CategoryCount struct {
	Category string `bson:"category" json:"category"`
	Count    int64  `bson:"count" json:"count"`
}

// AdminStats is the admin dashboard summary.
type AdminStats struct {
	Banners    BannerCounts     `json:"banners"`
	Products   ProductCounts    `json:"products"`
	Users      UserCounts       `json:"users"`
	Patients   int64            `json:"patients"`
	Categories []*CategoryCount `json:"categories"`
}

// DayRevenue is the paid revenue and units sold on one calendar day.
type DayRevenue struct {
	Date     string  `bson:"date" json:"date"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
	Quantity int64   `bson:"quantity" json:"quantity"`
}

// ProductSales is a product's paid sales, priced from its order lines.
type ProductSales struct {
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Brand     string  `bson:"brand" json:"brand"`
	Image     string  `bson:"image" json:"image"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int64   `bson:"quantity" json:"quantity"`
}

// CustomerSales is a customer's paid orders. Photo is nil when the
// customer has no user record.
type CustomerSales struct {
	Email  string  `bson:"email" json:"email"`
	Name   string  `bson:"name" json:"name"`
	Orders int64   `bson:"orders" json:"orders"`
	Spent  float64 `bson:"spent" json:"spent"`
	Photo  *string `bson:"photo" json:"photo"`
}

// DivisionRevenue is the paid revenue of one customer division.
type DivisionRevenue struct {
	Division string  `bson:"division" json:"division"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}

// SalesReport is the sales dashboard.
type SalesReport struct {
	TotalOrders       int64              `json:"totalOrders"`
	DeliveredOrders   int64              `json:"deliveredOrders"`
	PendingOrders     int64              `json:"pendingOrders"`
	TotalRevenue      float64            `json:"totalRevenue"`
	RevenuePerDay     []*DayRevenue      `json:"revenuePerDay"`
	TopProducts       []*ProductSales    `json:"topProducts"`
	TopCustomers      []*CustomerSales   `json:"topCustomers"`
	RevenueByDivision []*DivisionRevenue `json:"revenueByDivision"`
}

// ReadModel computes reports. Every call recomputes from the stored
// documents; nothing is cached between calls.
type ReadModel interface {
	AdminStats(ctx context.Context) (*AdminStats, error)
	SalesReport(ctx context.Context) (*SalesReport, error)
	TopSellingProducts(ctx context.Context, limit int64) ([]*ProductSales, error)
	LatestProducts(ctx context.Context, limit int64) ([]bson.M, error)
}
