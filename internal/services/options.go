package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/light-bringer/optics-service/internal/app/catalog/queries/filter_options"
	"github.com/light-bringer/optics-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/optics-service/internal/app/catalog/queries/list_products"
	catalogrepo "github.com/light-bringer/optics-service/internal/app/catalog/repo"
	"github.com/light-bringer/optics-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/optics-service/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/optics-service/internal/app/catalog/usecases/manage_banners"
	"github.com/light-bringer/optics-service/internal/app/catalog/usecases/manage_categories"
	"github.com/light-bringer/optics-service/internal/app/catalog/usecases/update_product"
	"github.com/light-bringer/optics-service/internal/app/customer/queries/get_user"
	"github.com/light-bringer/optics-service/internal/app/customer/queries/list_cart"
	"github.com/light-bringer/optics-service/internal/app/customer/queries/list_patients"
	"github.com/light-bringer/optics-service/internal/app/customer/queries/search_users"
	customerrepo "github.com/light-bringer/optics-service/internal/app/customer/repo"
	"github.com/light-bringer/optics-service/internal/app/customer/usecases/add_to_cart"
	"github.com/light-bringer/optics-service/internal/app/customer/usecases/manage_cart"
	"github.com/light-bringer/optics-service/internal/app/customer/usecases/manage_patients"
	"github.com/light-bringer/optics-service/internal/app/customer/usecases/manage_users"
	"github.com/light-bringer/optics-service/internal/app/customer/usecases/register_user"
	"github.com/light-bringer/optics-service/internal/app/report/queries/admin_stats"
	"github.com/light-bringer/optics-service/internal/app/report/queries/latest_products"
	"github.com/light-bringer/optics-service/internal/app/report/queries/sales_report"
	"github.com/light-bringer/optics-service/internal/app/report/queries/top_selling"
	reportrepo "github.com/light-bringer/optics-service/internal/app/report/repo"
	"github.com/light-bringer/optics-service/internal/app/sales/queries/get_invoice"
	"github.com/light-bringer/optics-service/internal/app/sales/queries/list_orders"
	salesrepo "github.com/light-bringer/optics-service/internal/app/sales/repo"
	"github.com/light-bringer/optics-service/internal/app/sales/usecases/place_order"
	"github.com/light-bringer/optics-service/internal/app/sales/usecases/update_order_status"
	"github.com/light-bringer/optics-service/internal/pkg/clock"
	httphandler "github.com/light-bringer/optics-service/internal/transport/http"
)

const connectTimeout = 10 * time.Second

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	MongoClient *mongo.Client
	Database    *mongo.Database
	Handlers    *httphandler.Handlers
}

// NewServiceOptions connects to MongoDB and wires up all application
// dependencies. accessToken signs and verifies bearer tokens.
func NewServiceOptions(ctx context.Context, mongoURI, database, accessToken string) (*ServiceOptions, error) {
	// 1. Connect to MongoDB
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	opts := &ServiceOptions{
		MongoClient: client,
		Database:    client.Database(database),
	}
	opts.Handlers = NewHandlers(opts.Database, accessToken, clock.NewRealClock())
	return opts, nil
}

// NewHandlers wires repositories, queries and use cases into the HTTP
// handlers for db.
func NewHandlers(db *mongo.Database, accessToken string, clk clock.Clock) *httphandler.Handlers {
	// 1. Repositories and read models
	productRepo := catalogrepo.NewProductRepo(db)
	categoryRepo := catalogrepo.NewCategoryRepo(db)
	bannerRepo := catalogrepo.NewBannerRepo(db)
	catalogReadModel := catalogrepo.NewReadModel(db)
	userRepo := customerrepo.NewUserRepo(db)
	cartRepo := customerrepo.NewCartRepo(db)
	patientRepo := customerrepo.NewPatientRepo(db)
	orderRepo := salesrepo.NewOrderRepo(db)
	reportReadModel := reportrepo.NewReadModel(db)

	// 2. Queries (read operations)
	getUser := get_user.NewQuery(userRepo)

	// 3. Handlers
	tokens := httphandler.NewTokens(accessToken, clk)

	return &httphandler.Handlers{
		Auth: httphandler.NewAuthHandler(tokens, getUser),
		Catalog: httphandler.NewCatalogHandler(
			list_products.NewQuery(catalogReadModel),
			filter_options.NewQuery(catalogReadModel),
			get_product.NewQuery(catalogReadModel),
			create_product.NewInteractor(productRepo),
			update_product.NewInteractor(productRepo),
			delete_product.NewInteractor(productRepo),
			manage_categories.NewInteractor(categoryRepo),
			manage_banners.NewInteractor(bannerRepo),
		),
		Customer: httphandler.NewCustomerHandler(
			register_user.NewInteractor(userRepo),
			manage_users.NewInteractor(userRepo),
			search_users.NewQuery(userRepo),
			getUser,
			add_to_cart.NewInteractor(cartRepo),
			manage_cart.NewInteractor(cartRepo),
			list_cart.NewQuery(cartRepo),
			manage_patients.NewInteractor(patientRepo, clk),
			list_patients.NewQuery(patientRepo),
		),
		Sales: httphandler.NewSalesHandler(
			place_order.NewInteractor(orderRepo, clk),
			update_order_status.NewInteractor(orderRepo),
			list_orders.NewQuery(orderRepo),
			get_invoice.NewQuery(orderRepo),
		),
		Report: httphandler.NewReportHandler(
			admin_stats.NewQuery(reportReadModel),
			sales_report.NewQuery(reportReadModel),
			top_selling.NewQuery(reportReadModel),
			latest_products.NewQuery(reportReadModel),
			clk,
		),
	}
}

// Ping reports whether the primary is reachable.
func (s *ServiceOptions) Ping(ctx context.Context) error {
	return s.MongoClient.Ping(ctx, readpref.Primary())
}

// Close disconnects from MongoDB.
func (s *ServiceOptions) Close() {
	if s.MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := s.MongoClient.Disconnect(ctx); err != nil {
		log.Printf("failed to disconnect from MongoDB: %v", err)
	}
}
