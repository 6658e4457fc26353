package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	catalog "github.com/light-bringer/optics-service/internal/app/catalog/domain"
	customer "github.com/light-bringer/optics-service/internal/app/customer/domain"
	"github.com/light-bringer/optics-service/internal/app/report/contracts"
	sales "github.com/light-bringer/optics-service/internal/app/sales/domain"
	"github.com/light-bringer/optics-service/internal/models/m_banner"
	"github.com/light-bringer/optics-service/internal/models/m_order"
	"github.com/light-bringer/optics-service/internal/models/m_patient"
	"github.com/light-bringer/optics-service/internal/models/m_product"
	"github.com/light-bringer/optics-service/internal/models/m_user"
	"github.com/light-bringer/optics-service/internal/pkg/query"
)

// Sizes of the ranked lists in the sales report.
const (
	reportTopProducts  = 5
	reportTopCustomers = 5
)

// ReadModelImpl implements the report ReadModel for MongoDB.
type ReadModelImpl struct {
	db *mongo.Database
}

// NewReadModel creates a new report ReadModel.
func NewReadModel(db *mongo.Database) contracts.ReadModel {
	return &ReadModelImpl{db: db}
}

// AdminStats counts banners, products, users and patients and groups
// products by category. Each figure is its own store call.
func (rm *ReadModelImpl) AdminStats(ctx context.Context) (*contracts.AdminStats, error) {
	stats := &contracts.AdminStats{}

	counts := []struct {
		name string
		stmt query.Statement
		dst  *int64
	}{
		{"banners", CountStatement(m_banner.CollectionName), &stats.Banners.Total},
		{"active banners", CountStatement(m_banner.CollectionName, query.Eq(m_banner.Status, string(catalog.BannerAdded))), &stats.Banners.Active},
		{"inactive banners", CountStatement(m_banner.CollectionName, query.Eq(m_banner.Status, string(catalog.BannerRemoved))), &stats.Banners.Inactive},
		{"products", CountStatement(m_product.CollectionName), &stats.Products.Total},
		{"in-stock products", StockCountStatement(catalog.StatusInStock), &stats.Products.InStock},
		{"out-of-stock products", StockCountStatement(catalog.StatusOutOfStock), &stats.Products.OutOfStock},
		{"users", CountStatement(m_user.CollectionName), &stats.Users.Total},
		{"admins", AdminCountStatement(string(customer.RoleAdmin)), &stats.Users.Admins},
		{"patients", CountStatement(m_patient.CollectionName), &stats.Patients},
	}
	for _, c := range counts {
		n, err := query.RunCount(ctx, rm.db, c.stmt)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.name, err)
		}
		*c.dst = n
	}

	stats.Categories = []*contracts.CategoryCount{}
	if err := query.Run(ctx, rm.db, CategoryCountsStatement(), &stats.Categories); err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	return stats, nil
}

// SalesReport computes the sales dashboard from paid and unpaid orders.
func (rm *ReadModelImpl) SalesReport(ctx context.Context) (*contracts.SalesReport, error) {
	report := &contracts.SalesReport{
		RevenuePerDay:     []*contracts.DayRevenue{},
		TopProducts:       []*contracts.ProductSales{},
		TopCustomers:      []*contracts.CustomerSales{},
		RevenueByDivision: []*contracts.DivisionRevenue{},
	}

	counts := []struct {
		name string
		stmt query.Statement
		dst  *int64
	}{
		{"orders", CountStatement(m_order.CollectionName), &report.TotalOrders},
		{"delivered orders", CountStatement(m_order.CollectionName, query.Eq(m_order.OrderStatus, string(sales.OrderDelivered))), &report.DeliveredOrders},
		{"pending orders", CountStatement(m_order.CollectionName, query.Eq(m_order.OrderStatus, string(sales.OrderPending))), &report.PendingOrders},
	}
	for _, c := range counts {
		n, err := query.RunCount(ctx, rm.db, c.stmt)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.name, err)
		}
		*c.dst = n
	}

	var revenue []struct {
		Revenue float64 `bson:"revenue"`
	}
	if err := query.Run(ctx, rm.db, RevenueStatement(), &revenue); err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	if len(revenue) > 0 {
		report.TotalRevenue = revenue[0].Revenue
	}

	sections := []struct {
		name    string
		stmt    query.Statement
		results interface{}
	}{
		{"revenue per day", RevenuePerDayStatement(), &report.RevenuePerDay},
		{"top products", TopProductsStatement(reportTopProducts), &report.TopProducts},
		{"top customers", TopCustomersStatement(reportTopCustomers), &report.TopCustomers},
		{"revenue by division", RevenueByDivisionStatement(), &report.RevenueByDivision},
	}
	for _, s := range sections {
		if err := query.Run(ctx, rm.db, s.stmt, s.results); err != nil {
			return nil, fmt.Errorf("failed to compute %s: %w", s.name, err)
		}
	}

	return report, nil
}

// TopSellingProducts ranks products by units sold across all paid orders.
func (rm *ReadModelImpl) TopSellingProducts(ctx context.Context, limit int64) ([]*contracts.ProductSales, error) {
	products := []*contracts.ProductSales{}
	if err := query.Run(ctx, rm.db, TopProductsStatement(limit), &products); err != nil {
		return nil, fmt.Errorf("failed to rank products: %w", err)
	}
	return products, nil
}

// LatestProducts returns the newest catalog entries as stored.
func (rm *ReadModelImpl) LatestProducts(ctx context.Context, limit int64) ([]bson.M, error) {
	products := []bson.M{}
	if err := query.Run(ctx, rm.db, LatestProductsStatement(limit), &products); err != nil {
		return nil, fmt.Errorf("failed to list latest products: %w", err)
	}
	return products, nil
}
