package http

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	catcontracts "github.com/light-bringer/optics-service/internal/app/catalog/contracts"
	catdomain "github.com/light-bringer/optics-service/internal/app/catalog/domain"
	"github.com/light-bringer/optics-service/internal/app/catalog/queries/filter_options"
	"github.com/light-bringer/optics-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/optics-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/optics-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/optics-service/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/optics-service/internal/app/catalog/usecases/manage_banners"
	"github.com/light-bringer/optics-service/internal/app/catalog/usecases/manage_categories"
	"github.com/light-bringer/optics-service/internal/app/catalog/usecases/update_product"
	custcontracts "github.com/light-bringer/optics-service/internal/app/customer/contracts"
	custdomain "github.com/light-bringer/optics-service/internal/app/customer/domain"
	"github.com/light-bringer/optics-service/internal/app/customer/queries/get_user"
	"github.com/light-bringer/optics-service/internal/app/customer/queries/list_cart"
	"github.com/light-bringer/optics-service/internal/app/customer/queries/list_patients"
	"github.com/light-bringer/optics-service/internal/app/customer/queries/search_users"
	"github.com/light-bringer/optics-service/internal/app/customer/usecases/add_to_cart"
	"github.com/light-bringer/optics-service/internal/app/customer/usecases/manage_cart"
	"github.com/light-bringer/optics-service/internal/app/customer/usecases/manage_patients"
	"github.com/light-bringer/optics-service/internal/app/customer/usecases/manage_users"
	"github.com/light-bringer/optics-service/internal/app/customer/usecases/register_user"
	repcontracts "github.com/light-bringer/optics-service/internal/app/report/contracts"
	"github.com/light-bringer/optics-service/internal/app/report/queries/admin_stats"
	"github.com/light-bringer/optics-service/internal/app/report/queries/latest_products"
	"github.com/light-bringer/optics-service/internal/app/report/queries/sales_report"
	"github.com/light-bringer/optics-service/internal/app/report/queries/top_selling"
	salesdomain "github.com/light-bringer/optics-service/internal/app/sales/domain"
	"github.com/light-bringer/optics-service/internal/app/sales/queries/get_invoice"
	"github.com/light-bringer/optics-service/internal/app/sales/queries/list_orders"
	"github.com/light-bringer/optics-service/internal/app/sales/usecases/place_order"
	"github.com/light-bringer/optics-service/internal/app/sales/usecases/update_order_status"
	"github.com/light-bringer/optics-service/internal/pkg/clock"
)

const testSecret = "test-secret"

var errStore = errors.New("server selection timeout: mongodb://10.0.0.5:27017")

// catalogStore fakes every catalog contract.
type catalogStore struct {
	listFilter *catcontracts.ListFilter
	products   map[primitive.ObjectID]bson.M
	replaced   map[primitive.ObjectID]*catdomain.Product
	listErr    error
}

func (s *catalogStore) ListProducts(_ context.Context, f *catcontracts.ListFilter) ([]bson.M, error) {
	s.listFilter = f
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := []bson.M{}
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *catalogStore) FilterOptions(context.Context) (*catcontracts.FilterOptions, error) {
	return &catcontracts.FilterOptions{Brands: []string{"Zeta"}, PriceRange: catcontracts.PriceRange{Min: 80, Max: 120}}, nil
}

func (s *catalogStore) GetProductByID(_ context.Context, id primitive.ObjectID) (bson.M, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, catdomain.ErrProductNotFound
	}
	return p, nil
}

func (s *catalogStore) Insert(context.Context, *catdomain.Product) (string, error) {
	return primitive.NewObjectID().Hex(), nil
}

func (s *catalogStore) Replace(_ context.Context, id primitive.ObjectID, p *catdomain.Product) error {
	if _, ok := s.products[id]; !ok {
		return catdomain.ErrProductNotFound
	}
	s.replaced[id] = p
	return nil
}

func (s *catalogStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.products[id]; !ok {
		return catdomain.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

type categoryStore struct{}

func (categoryStore) Insert(context.Context, *catdomain.Category) (string, error) {
	return primitive.NewObjectID().Hex(), nil
}

func (categoryStore) List(context.Context) ([]*catcontracts.CategoryDTO, error) {
	return []*catcontracts.CategoryDTO{}, nil
}

func (categoryStore) GetByID(context.Context, primitive.ObjectID) (*catcontracts.CategoryDTO, error) {
	return nil, catdomain.ErrCategoryNotFound
}

func (categoryStore) Update(context.Context, primitive.ObjectID, *catdomain.Category) error {
	return catdomain.ErrCategoryNotFound
}

func (categoryStore) Delete(context.Context, primitive.ObjectID) error {
	return catdomain.ErrCategoryNotFound
}

type bannerStore struct{}

func (bannerStore) Insert(context.Context, *catdomain.Banner) (string, error) {
	return primitive.NewObjectID().Hex(), nil
}

func (bannerStore) List(context.Context) ([]*catcontracts.BannerDTO, error) {
	return []*catcontracts.BannerDTO{}, nil
}

func (bannerStore) UpdateStatus(context.Context, primitive.ObjectID, catdomain.BannerStatus) error {
	return nil
}

func (bannerStore) Delete(context.Context, primitive.ObjectID) error { return nil }

// userStore fakes the user and cart contracts keyed by email.
type userStore struct {
	users map[string]*custcontracts.UserDTO
	carts map[string]string // email|productId -> id
}

func (s *userStore) Register(_ context.Context, u *custdomain.User) (string, error) {
	if existing, ok := s.users[u.Email]; ok {
		return "", custdomain.NewUserConflict(existing.ID, u.Email)
	}
	id := primitive.NewObjectID().Hex()
	s.users[u.Email] = &custcontracts.UserDTO{ID: id, Email: u.Email, Name: u.Name, Role: string(u.Role)}
	return id, nil
}

func (s *userStore) Search(context.Context, string) ([]*custcontracts.UserDTO, error) {
	out := []*custcontracts.UserDTO{}
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *userStore) FindByEmail(_ context.Context, email string) (*custcontracts.UserDTO, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, custdomain.ErrUserNotFound
	}
	return u, nil
}

func (s *userStore) SetRole(context.Context, primitive.ObjectID, custdomain.Role) error { return nil }

func (s *userStore) SetVoucher(context.Context, primitive.ObjectID, int) error { return nil }

func (s *userStore) UpsertProfile(context.Context, primitive.ObjectID, *custdomain.Profile) error {
	return nil
}

func (s *userStore) Add(_ context.Context, item *custdomain.CartItem) (string, error) {
	key := item.Email + "|" + item.ProductID
	if id, ok := s.carts[key]; ok {
		return "", custdomain.NewCartConflict(id, item.ProductID)
	}
	id := primitive.NewObjectID().Hex()
	s.carts[key] = id
	return id, nil
}

func (s *userStore) ListByEmail(context.Context, string) ([]*custcontracts.CartItemDTO, error) {
	return []*custcontracts.CartItemDTO{}, nil
}

func (s *userStore) Delete(context.Context, primitive.ObjectID) error {
	return custdomain.ErrCartItemNotFound
}

func (s *userStore) DeleteByEmail(context.Context, string) (int64, error) { return 0, nil }

type patientStore struct{}

func (patientStore) Insert(context.Context, *custdomain.Patient) (string, error) {
	return primitive.NewObjectID().Hex(), nil
}

func (patientStore) List(context.Context) ([]*custcontracts.PatientDTO, error) {
	return []*custcontracts.PatientDTO{}, nil
}

func (patientStore) GetByID(context.Context, primitive.ObjectID) (*custcontracts.PatientDTO, error) {
	return nil, custdomain.ErrPatientNotFound
}

func (patientStore) Update(context.Context, primitive.ObjectID, *custdomain.Patient) error {
	return nil
}

func (patientStore) Delete(context.Context, primitive.ObjectID) error { return nil }

// orderStore fakes the order repository and invoice reader.
type orderStore struct {
	invoices map[primitive.ObjectID]bson.M
	placed   []*salesdomain.Order
}

func (s *orderStore) Insert(_ context.Context, o *salesdomain.Order) (string, error) {
	s.placed = append(s.placed, o)
	return primitive.NewObjectID().Hex(), nil
}

func (s *orderStore) List(context.Context, string) ([]bson.M, error) { return []bson.M{}, nil }

func (s *orderStore) SetOrderStatus(context.Context, primitive.ObjectID, salesdomain.OrderStatus) error {
	return nil
}

func (s *orderStore) SetPaymentStatus(context.Context, primitive.ObjectID, salesdomain.PaymentStatus) error {
	return nil
}

func (s *orderStore) GetInvoice(_ context.Context, id primitive.ObjectID) (bson.M, error) {
	inv, ok := s.invoices[id]
	if !ok {
		return nil, salesdomain.ErrOrderNotFound
	}
	return inv, nil
}

type reportStore struct {
	err error
}

func (s reportStore) AdminStats(context.Context) (*repcontracts.AdminStats, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &repcontracts.AdminStats{Patients: 3, Categories: []*repcontracts.CategoryCount{}}, nil
}

func (s reportStore) SalesReport(context.Context) (*repcontracts.SalesReport, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &repcontracts.SalesReport{TotalOrders: 2, TotalRevenue: 120}, nil
}

func (s reportStore) TopSellingProducts(context.Context, int64) ([]*repcontracts.ProductSales, error) {
	return []*repcontracts.ProductSales{}, nil
}

func (s reportStore) LatestProducts(context.Context, int64) ([]bson.M, error) {
	return []bson.M{}, nil
}

// testEnv is a router wired to in-memory stores.
type testEnv struct {
	router  *gin.Engine
	tokens  *Tokens
	clock   *clock.MockClock
	catalog *catalogStore
	users   *userStore
	orders  *orderStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clk := clock.NewMockClock(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	cat := &catalogStore{
		products: map[primitive.ObjectID]bson.M{},
		replaced: map[primitive.ObjectID]*catdomain.Product{},
	}
	users := &userStore{
		users: map[string]*custcontracts.UserDTO{
			"boss@example.com": {ID: primitive.NewObjectID().Hex(), Email: "boss@example.com", Role: "Admin"},
			"ana@example.com":  {ID: primitive.NewObjectID().Hex(), Email: "ana@example.com", Role: "User"},
		},
		carts: map[string]string{},
	}
	orders := &orderStore{invoices: map[primitive.ObjectID]bson.M{}}
	reports := reportStore{}

	tokens := NewTokens(testSecret, clk)
	getUser := get_user.NewQuery(users)

	h := &Handlers{
		Auth: NewAuthHandler(tokens, getUser),
		Catalog: NewCatalogHandler(
			list_products.NewQuery(cat),
			filter_options.NewQuery(cat),
			get_product.NewQuery(cat),
			create_product.NewInteractor(cat),
			update_product.NewInteractor(cat),
			delete_product.NewInteractor(cat),
			manage_categories.NewInteractor(categoryStore{}),
			manage_banners.NewInteractor(bannerStore{}),
		),
		Customer: NewCustomerHandler(
			register_user.NewInteractor(users),
			manage_users.NewInteractor(users),
			search_users.NewQuery(users),
			getUser,
			add_to_cart.NewInteractor(users),
			manage_cart.NewInteractor(users),
			list_cart.NewQuery(users),
			manage_patients.NewInteractor(patientStore{}, clk),
			list_patients.NewQuery(patientStore{}),
		),
		Sales: NewSalesHandler(
			place_order.NewInteractor(orders, clk),
			update_order_status.NewInteractor(orders),
			list_orders.NewQuery(orders),
			get_invoice.NewQuery(orders),
		),
		Report: NewReportHandler(
			admin_stats.NewQuery(reports),
			sales_report.NewQuery(reports),
			top_selling.NewQuery(reports),
			latest_products.NewQuery(reports),
			clk,
		),
	}

	return &testEnv{
		router:  NewRouter(h, nil),
		tokens:  tokens,
		clock:   clk,
		catalog: cat,
		users:   users,
		orders:  orders,
	}
}
