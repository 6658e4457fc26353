package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers groups the route handlers of every area.
type Handlers struct {
	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Customer *CustomerHandler
	Sales    *SalesHandler
	Report   *ReportHandler
}

// NewRouter builds the gin engine with middleware and every route.
// Storefront reads are public; account routes need a token; admin
// console routes need a token belonging to an Admin.
func NewRouter(h *Handlers, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), RequestID(), CORS(corsOrigins))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "optics service is running")
	})

	r.POST("/jwt", h.Auth.IssueToken)

	// Storefront
	r.GET("/products", h.Catalog.ListProducts)
	r.GET("/filter-options", h.Catalog.FilterOptions)
	r.GET("/product/:id", h.Catalog.GetProduct)
	r.GET("/categories", h.Catalog.ListCategories)
	r.GET("/category/:id", h.Catalog.GetCategory)
	r.GET("/banners", h.Catalog.ListBanners)
	r.GET("/latest-products", h.Report.LatestProducts)
	r.GET("/top-selling-products", h.Report.TopSellingProducts)
	r.POST("/users", h.Customer.RegisterUser)
	r.GET("/user", h.Customer.GetUser)

	account := r.Group("/", h.Auth.VerifyToken)
	account.PUT("/users/profile/:id", h.Customer.UpdateProfile)
	account.POST("/carts", h.Customer.AddToCart)
	account.GET("/carts", h.Auth.VerifyOwnerOrAdmin, h.Customer.ListCart)
	account.DELETE("/cart/:id", h.Customer.RemoveCartItem)
	account.DELETE("/carts", h.Auth.VerifyOwnerOrAdmin, h.Customer.ClearCart)
	account.POST("/orders", h.Sales.PlaceOrder)
	account.GET("/orders", h.Auth.VerifyOwnerOrAdmin, h.Sales.ListOrders)
	account.GET("/invoice/:id", h.Sales.GetInvoice)

	admin := r.Group("/", h.Auth.VerifyToken, h.Auth.VerifyAdmin)
	admin.POST("/products", h.Catalog.CreateProduct)
	admin.PATCH("/product/update/:id", h.Catalog.UpdateProduct)
	admin.DELETE("/product/delete/:id", h.Catalog.DeleteProduct)
	admin.POST("/categories", h.Catalog.CreateCategory)
	admin.PATCH("/category/update/:id", h.Catalog.UpdateCategory)
	admin.DELETE("/category/delete/:id", h.Catalog.DeleteCategory)
	admin.POST("/banners", h.Catalog.CreateBanner)
	admin.PATCH("/banner/status/:id", h.Catalog.SetBannerStatus)
	admin.DELETE("/banner/delete/:id", h.Catalog.DeleteBanner)
	admin.GET("/users", h.Customer.SearchUsers)
	admin.PATCH("/users/:id/voucher", h.Customer.SetVoucher)
	admin.PATCH("/users/:id/:role", h.Customer.SetRole)
	admin.PATCH("/order/status/:id", h.Sales.SetOrderStatus)
	admin.PATCH("/order/payment/:id", h.Sales.SetPaymentStatus)
	admin.POST("/patients", h.Customer.CreatePatient)
	admin.GET("/patients", h.Customer.ListPatients)
	admin.GET("/patient/:id", h.Customer.GetPatient)
	admin.PATCH("/patient/update/:id", h.Customer.UpdatePatient)
	admin.DELETE("/patient/delete/:id", h.Customer.DeletePatient)
	admin.GET("/admin-stats", h.Report.AdminStats)
	admin.GET("/sales-report", h.Report.SalesReport)
	admin.GET("/sales-report/export", h.Report.ExportSalesReport)

	return r
}
