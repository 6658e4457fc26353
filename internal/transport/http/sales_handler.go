package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/optics-service/internal/app/sales/domain"
	"github.com/light-bringer/optics-service/internal/app/sales/queries/get_invoice"
	"github.com/light-bringer/optics-service/internal/app/sales/queries/list_orders"
	"github.com/light-bringer/optics-service/internal/app/sales/usecases/place_order"
	"github.com/light-bringer/optics-service/internal/app/sales/usecases/update_order_status"
)

// SalesHandler serves orders and invoices.
type SalesHandler struct {
	placeOrder   *place_order.Interactor
	updateStatus *update_order_status.Interactor
	listOrders   *list_orders.Query
	getInvoice   *get_invoice.Query
}

// NewSalesHandler creates a new SalesHandler.
func NewSalesHandler(
	placeOrder *place_order.Interactor,
	updateStatus *update_order_status.Interactor,
	listOrders *list_orders.Query,
	getInvoice *get_invoice.Query,
) *SalesHandler {
	return &SalesHandler{
		placeOrder:   placeOrder,
		updateStatus: updateStatus,
		listOrders:   listOrders,
		getInvoice:   getInvoice,
	}
}

// PlaceOrder handles POST /orders.
func (h *SalesHandler) PlaceOrder(c *gin.Context) {
	var body struct {
		CustomerInfo struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Phone    string `json:"phone"`
			Division string `json:"division"`
			Address  string `json:"address"`
		} `json:"customerInfo"`
		Products []struct {
			ProductID string  `json:"productId"`
			Name      string  `json:"name"`
			Brand     string  `json:"brand"`
			Image     string  `json:"image"`
			Quantity  int     `json:"quantity"`
			Price     float64 `json:"price"`
		} `json:"products"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid order body")
		return
	}

	req := &place_order.Request{
		Customer: domain.Customer{
			Name:     body.CustomerInfo.Name,
			Email:    body.CustomerInfo.Email,
			Phone:    body.CustomerInfo.Phone,
			Division: body.CustomerInfo.Division,
			Address:  body.CustomerInfo.Address,
		},
		Items: make([]place_order.Item, 0, len(body.Products)),
	}
	for _, p := range body.Products {
		req.Items = append(req.Items, place_order.Item{
			ProductID: p.ProductID,
			Name:      p.Name,
			Brand:     p.Brand,
			Image:     p.Image,
			Quantity:  p.Quantity,
			Price:     p.Price,
		})
	}

	resp, err := h.placeOrder.Execute(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Failed to place order")
		return
	}
	total, _ := resp.TotalPrice.Float64()
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "insertedId": resp.OrderID, "totalPrice": total})
}

// ListOrders handles GET /orders[?email=].
func (h *SalesHandler) ListOrders(c *gin.Context) {
	orders, err := h.listOrders.Execute(c.Request.Context(), c.Query("email"))
	if err != nil {
		writeError(c, err, "Failed to fetch orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// SetOrderStatus handles PATCH /order/status/:id.
func (h *SalesHandler) SetOrderStatus(c *gin.Context) {
	var body struct {
		OrderStatus string `json:"orderStatus"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid status body")
		return
	}
	if err := h.updateStatus.SetOrderStatus(c.Request.Context(), c.Param("id"), body.OrderStatus); err != nil {
		writeError(c, err, "Failed to update order status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// SetPaymentStatus handles PATCH /order/payment/:id.
func (h *SalesHandler) SetPaymentStatus(c *gin.Context) {
	var body struct {
		PaymentStatus string `json:"paymentStatus"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid payment body")
		return
	}
	if err := h.updateStatus.SetPaymentStatus(c.Request.Context(), c.Param("id"), body.PaymentStatus); err != nil {
		writeError(c, err, "Failed to update payment status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// GetInvoice handles GET /invoice/:id.
func (h *SalesHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.getInvoice.Execute(c.Request.Context(), &get_invoice.Request{OrderID: c.Param("id")})
	if err != nil {
		writeError(c, err, "Failed to generate invoice")
		return
	}
	c.JSON(http.StatusOK, invoice)
}
