package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/optics-service/internal/app/customer/domain"
	"github.com/light-bringer/optics-service/internal/app/customer/queries/get_user"
	"github.com/light-bringer/optics-service/internal/app/customer/queries/list_cart"
	"github.com/light-bringer/optics-service/internal/app/customer/queries/list_patients"
	"github.com/light-bringer/optics-service/internal/app/customer/queries/search_users"
	"github.com/light-bringer/optics-service/internal/app/customer/usecases/add_to_cart"
	"github.com/light-bringer/optics-service/internal/app/customer/usecases/manage_cart"
	"github.com/light-bringer/optics-service/internal/app/customer/usecases/manage_patients"
	"github.com/light-bringer/optics-service/internal/app/customer/usecases/manage_users"
	"github.com/light-bringer/optics-service/internal/app/customer/usecases/register_user"
)

// CustomerHandler serves users, carts and patients.
type CustomerHandler struct {
	registerUser *register_user.Interactor
	manageUsers  *manage_users.Interactor
	searchUsers  *search_users.Query
	getUser      *get_user.Query
	addToCart    *add_to_cart.Interactor
	manageCart   *manage_cart.Interactor
	listCart     *list_cart.Query
	patients     *manage_patients.Interactor
	listPatients *list_patients.Query
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(
	registerUser *register_user.Interactor,
	manageUsers *manage_users.Interactor,
	searchUsers *search_users.Query,
	getUser *get_user.Query,
	addToCart *add_to_cart.Interactor,
	manageCart *manage_cart.Interactor,
	listCart *list_cart.Query,
	patients *manage_patients.Interactor,
	listPatients *list_patients.Query,
) *CustomerHandler {
	return &CustomerHandler{
		registerUser: registerUser,
		manageUsers:  manageUsers,
		searchUsers:  searchUsers,
		getUser:      getUser,
		addToCart:    addToCart,
		manageCart:   manageCart,
		listCart:     listCart,
		patients:     patients,
		listPatients: listPatients,
	}
}

// RegisterUser handles POST /users.
func (h *CustomerHandler) RegisterUser(c *gin.Context) {
	var body struct {
		Email  string `json:"email"`
		Name   string `json:"name"`
		Role   string `json:"role"`
		Image  string `json:"image"`
		Mobile string `json:"mobile"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid user body")
		return
	}

	id, err := h.registerUser.Execute(c.Request.Context(), &register_user.Request{
		Email:  body.Email,
		Name:   body.Name,
		Role:   body.Role,
		Image:  body.Image,
		Mobile: body.Mobile,
	})
	if err != nil {
		writeError(c, err, "Failed to register user")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "insertedId": id})
}

// SearchUsers handles GET /users?search=.
func (h *CustomerHandler) SearchUsers(c *gin.Context) {
	users, err := h.searchUsers.Execute(c.Request.Context(), &search_users.Request{Search: c.Query("search")})
	if err != nil {
		writeError(c, err, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /user?email=.
func (h *CustomerHandler) GetUser(c *gin.Context) {
	user, err := h.getUser.Execute(c.Request.Context(), c.Query("email"))
	if err != nil {
		writeError(c, err, "Failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// SetRole handles PATCH /users/:id/:role.
func (h *CustomerHandler) SetRole(c *gin.Context) {
	if err := h.manageUsers.SetRole(c.Request.Context(), c.Param("id"), c.Param("role")); err != nil {
		writeError(c, err, "Failed to update role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// SetVoucher handles PATCH /users/:id/voucher.
func (h *CustomerHandler) SetVoucher(c *gin.Context) {
	var body struct {
		DiscountVoucher *int `json:"discountVoucher"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.DiscountVoucher == nil {
		badRequest(c, "discountVoucher is required")
		return
	}
	if err := h.manageUsers.SetVoucher(c.Request.Context(), c.Param("id"), *body.DiscountVoucher); err != nil {
		writeError(c, err, "Failed to update voucher")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// UpdateProfile handles PUT /users/profile/:id.
func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	var body struct {
		Name   string `json:"name"`
		Mobile string `json:"mobile"`
		Image  string `json:"image"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid profile body")
		return
	}
	err := h.manageUsers.UpdateProfile(c.Request.Context(), c.Param("id"), &domain.Profile{
		Name:   body.Name,
		Mobile: body.Mobile,
		Image:  body.Image,
	})
	if err != nil {
		writeError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// AddToCart handles POST /carts.
func (h *CustomerHandler) AddToCart(c *gin.Context) {
	var body struct {
		Email       string  `json:"email"`
		ProductID   string  `json:"productId"`
		ProductName string  `json:"productName"`
		BrandName   string  `json:"brandName"`
		Image       string  `json:"image"`
		Price       float64 `json:"price"`
		Quantity    int     `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid cart body")
		return
	}

	id, err := h.addToCart.Execute(c.Request.Context(), &add_to_cart.Request{
		Email:       body.Email,
		ProductID:   body.ProductID,
		ProductName: body.ProductName,
		BrandName:   body.BrandName,
		Image:       body.Image,
		Price:       body.Price,
		Quantity:    body.Quantity,
	})
	if err != nil {
		writeError(c, err, "Failed to add to cart")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "insertedId": id})
}

// ListCart handles GET /carts?email=.
func (h *CustomerHandler) ListCart(c *gin.Context) {
	items, err := h.listCart.Execute(c.Request.Context(), c.Query("email"))
	if err != nil {
		writeError(c, err, "Failed to fetch cart")
		return
	}
	c.JSON(http.StatusOK, items)
}

// RemoveCartItem handles DELETE /cart/:id.
func (h *CustomerHandler) RemoveCartItem(c *gin.Context) {
	if err := h.manageCart.Remove(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Failed to remove cart item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": 1})
}

// ClearCart handles DELETE /carts?email=.
func (h *CustomerHandler) ClearCart(c *gin.Context) {
	n, err := h.manageCart.Clear(c.Request.Context(), c.Query("email"))
	if err != nil {
		writeError(c, err, "Failed to clear cart")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": n})
}

type eyeBody struct {
	Sphere   string `json:"sphere"`
	Cylinder string `json:"cylinder"`
	Axis     string `json:"axis"`
	Add      string `json:"add"`
}

func (e eyeBody) eye() domain.Eye {
	return domain.Eye{Sphere: e.Sphere, Cylinder: e.Cylinder, Axis: e.Axis, Add: e.Add}
}

type patientBody struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"`
	Prescription struct {
		RightEye eyeBody `json:"rightEye"`
		LeftEye  eyeBody `json:"leftEye"`
	} `json:"prescription"`
	Notes string `json:"notes"`
}

func (b *patientBody) request() *manage_patients.Request {
	return &manage_patients.Request{
		Name:   b.Name,
		Email:  b.Email,
		Phone:  b.Phone,
		Age:    b.Age,
		Gender: b.Gender,
		Prescription: domain.Prescription{
			RightEye: b.Prescription.RightEye.eye(),
			LeftEye:  b.Prescription.LeftEye.eye(),
		},
		Notes: b.Notes,
	}
}

// CreatePatient handles POST /patients.
func (h *CustomerHandler) CreatePatient(c *gin.Context) {
	var body patientBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid patient body")
		return
	}
	id, err := h.patients.Create(c.Request.Context(), body.request())
	if err != nil {
		writeError(c, err, "Failed to create patient")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "insertedId": id})
}

// ListPatients handles GET /patients.
func (h *CustomerHandler) ListPatients(c *gin.Context) {
	patients, err := h.listPatients.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to fetch patients")
		return
	}
	c.JSON(http.StatusOK, patients)
}

// GetPatient handles GET /patient/:id.
func (h *CustomerHandler) GetPatient(c *gin.Context) {
	patient, err := h.listPatients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to fetch patient")
		return
	}
	c.JSON(http.StatusOK, patient)
}

// UpdatePatient handles PATCH /patient/update/:id.
func (h *CustomerHandler) UpdatePatient(c *gin.Context) {
	var body patientBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid patient body")
		return
	}
	if err := h.patients.Update(c.Request.Context(), c.Param("id"), body.request()); err != nil {
		writeError(c, err, "Failed to update patient")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// DeletePatient handles DELETE /patient/delete/:id.
func (h *CustomerHandler) DeletePatient(c *gin.Context) {
	if err := h.patients.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete patient")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}
