package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/optics-service/internal/app/catalog/domain"
	"github.com/light-bringer/optics-service/internal/app/catalog/queries/filter_options"
	"github.com/light-bringer/optics-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/optics-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/optics-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/optics-service/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/optics-service/internal/app/catalog/usecases/manage_banners"
	"github.com/light-bringer/optics-service/internal/app/catalog/usecases/manage_categories"
	"github.com/light-bringer/optics-service/internal/app/catalog/usecases/update_product"
)

// CatalogHandler serves products, categories and banners.
type CatalogHandler struct {
	listProducts  *list_products.Query
	filterOptions *filter_options.Query
	getProduct    *get_product.Query
	createProduct *create_product.Interactor
	updateProduct *update_product.Interactor
	deleteProduct *delete_product.Interactor
	categories    *manage_categories.Interactor
	banners       *manage_banners.Interactor
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(
	listProducts *list_products.Query,
	filterOptions *filter_options.Query,
	getProduct *get_product.Query,
	createProduct *create_product.Interactor,
	updateProduct *update_product.Interactor,
	deleteProduct *delete_product.Interactor,
	categories *manage_categories.Interactor,
	banners *manage_banners.Interactor,
) *CatalogHandler {
	return &CatalogHandler{
		listProducts:  listProducts,
		filterOptions: filterOptions,
		getProduct:    getProduct,
		createProduct: createProduct,
		updateProduct: updateProduct,
		deleteProduct: deleteProduct,
		categories:    categories,
		banners:       banners,
	}
}

// amountText accepts a price amount sent either as a JSON string or number.
type amountText string

func (a *amountText) UnmarshalJSON(b []byte) error {
	if bytes.HasPrefix(b, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = amountText(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	*a = amountText(b)
	return nil
}

// productBody is the product form in its stored shape.
type productBody struct {
	ProductName   string `json:"productName"`
	BrandName     string `json:"brandName"`
	Category      string `json:"category"`
	Gender        string `json:"gender"`
	Origin        string `json:"origin"`
	FrameMaterial string `json:"frameMaterial"`
	FrameSize     string `json:"frameSize"`
	FrameType     string `json:"frameType"`
	Color         string `json:"color"`
	LensMaterial  string `json:"lensMaterial"`
	Prescription  string `json:"prescription"`
	Dimensions    string `json:"dimensions"`
	Warranty      string `json:"warranty"`
	Status        string `json:"status"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	Price         struct {
		Amount   amountText `json:"amount"`
		Currency string     `json:"currency"`
		Discount *struct {
			Percentage float64 `json:"percentage"`
		} `json:"discount"`
	} `json:"price"`
}

func (b *productBody) draft() domain.Draft {
	d := domain.Draft{
		Name:          b.ProductName,
		Brand:         b.BrandName,
		Category:      b.Category,
		Gender:        b.Gender,
		Origin:        b.Origin,
		FrameMaterial: b.FrameMaterial,
		FrameSize:     b.FrameSize,
		FrameType:     b.FrameType,
		Color:         b.Color,
		LensMaterial:  b.LensMaterial,
		Prescription:  b.Prescription,
		Dimensions:    b.Dimensions,
		Warranty:      b.Warranty,
		Description:   b.Description,
		Image:         b.Image,
		Status:        b.Status,
		PriceAmount:   string(b.Price.Amount),
		Currency:      b.Price.Currency,
	}
	if b.Price.Discount != nil {
		pct := b.Price.Discount.Percentage
		d.DiscountPercent = &pct
	}
	return d
}

// ListProducts handles GET /products.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.listProducts.Execute(c.Request.Context(), &list_products.Request{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Gender:   c.Query("gender"),
		Brand:    c.Query("brand"),
		Material: c.Query("material"),
		Size:     c.Query("size"),
		Type:     c.Query("type"),
		MinPrice: c.Query("minPrice"),
		MaxPrice: c.Query("maxPrice"),
		Sort:     c.Query("sort"),
	})
	if err != nil {
		writeError(c, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// FilterOptions handles GET /filter-options.
func (h *CatalogHandler) FilterOptions(c *gin.Context) {
	opts, err := h.filterOptions.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to fetch filter options")
		return
	}
	c.JSON(http.StatusOK, opts)
}

// GetProduct handles GET /product/:id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.getProduct.Execute(c.Request.Context(), &get_product.Request{ProductID: c.Param("id")})
	if err != nil {
		writeError(c, err, "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /products.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var body productBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid product body")
		return
	}

	id, err := h.createProduct.Execute(c.Request.Context(), &create_product.Request{Draft: body.draft()})
	if err != nil {
		writeError(c, err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "insertedId": id})
}

// UpdateProduct handles PATCH /product/update/:id.
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var body productBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid product body")
		return
	}

	err := h.updateProduct.Execute(c.Request.Context(), &update_product.Request{
		ProductID: c.Param("id"),
		Draft:     body.draft(),
	})
	if err != nil {
		writeError(c, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// DeleteProduct handles DELETE /product/delete/:id.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.deleteProduct.Execute(c.Request.Context(), &delete_product.Request{ProductID: c.Param("id")}); err != nil {
		writeError(c, err, "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

type categoryBody struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func (b *categoryBody) request() *manage_categories.Request {
	return &manage_categories.Request{Name: b.Name, Image: b.Image, Description: b.Description}
}

// CreateCategory handles POST /categories.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var body categoryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid category body")
		return
	}
	id, err := h.categories.Create(c.Request.Context(), body.request())
	if err != nil {
		writeError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "insertedId": id})
}

// ListCategories handles GET /categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /category/:id.
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.categories.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to fetch category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// UpdateCategory handles PATCH /category/update/:id.
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var body categoryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid category body")
		return
	}
	if err := h.categories.Update(c.Request.Context(), c.Param("id"), body.request()); err != nil {
		writeError(c, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// DeleteCategory handles DELETE /category/delete/:id.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// CreateBanner handles POST /banners.
func (h *CatalogHandler) CreateBanner(c *gin.Context) {
	var body struct {
		Title  string `json:"title"`
		Image  string `json:"image"`
		Link   string `json:"link"`
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid banner body")
		return
	}
	id, err := h.banners.Create(c.Request.Context(), &manage_banners.Request{
		Title:  body.Title,
		Image:  body.Image,
		Link:   body.Link,
		Status: body.Status,
	})
	if err != nil {
		writeError(c, err, "Failed to create banner")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "insertedId": id})
}

// ListBanners handles GET /banners.
func (h *CatalogHandler) ListBanners(c *gin.Context) {
	banners, err := h.banners.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to fetch banners")
		return
	}
	c.JSON(http.StatusOK, banners)
}

// SetBannerStatus handles PATCH /banner/status/:id.
func (h *CatalogHandler) SetBannerStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid banner status body")
		return
	}
	if err := h.banners.SetStatus(c.Request.Context(), c.Param("id"), body.Status); err != nil {
		writeError(c, err, "Failed to update banner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// DeleteBanner handles DELETE /banner/delete/:id.
func (h *CatalogHandler) DeleteBanner(c *gin.Context) {
	if err := h.banners.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete banner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}
