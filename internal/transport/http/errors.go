package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog "github.com/light-bringer/optics-service/internal/app/catalog/domain"
	customer "github.com/light-bringer/optics-service/internal/app/customer/domain"
	sales "github.com/light-bringer/optics-service/internal/app/sales/domain"
	"github.com/light-bringer/optics-service/internal/pkg/ids"
)

// notFoundMessages maps missing-document errors to their response text.
var notFoundMessages = []struct {
	err     error
	message string
}{
	{catalog.ErrProductNotFound, "Product not found"},
	{catalog.ErrCategoryNotFound, "Category not found"},
	{catalog.ErrBannerNotFound, "Banner not found"},
	{customer.ErrUserNotFound, "User not found"},
	{customer.ErrCartItemNotFound, "Cart item not found"},
	{customer.ErrPatientNotFound, "Patient not found"},
	{sales.ErrOrderNotFound, "Order not found"},
}

// validationErrors are reported to the client verbatim with 400.
var validationErrors = []error{
	ids.ErrInvalidID,

	catalog.ErrEmptyName,
	catalog.ErrInvalidCategory,
	catalog.ErrInvalidPrice,
	catalog.ErrInvalidDiscountPercent,
	catalog.ErrInvalidStockStatus,
	catalog.ErrEmptyCategoryName,
	catalog.ErrEmptyBannerImage,
	catalog.ErrInvalidBannerStatus,

	customer.ErrEmptyEmail,
	customer.ErrInvalidRole,
	customer.ErrInvalidVoucher,
	customer.ErrEmptyProductID,
	customer.ErrInvalidQuantity,
	customer.ErrInvalidCartPrice,
	customer.ErrEmptyPatientName,
	customer.ErrInvalidAge,

	sales.ErrEmptyOrder,
	sales.ErrEmptyCustomerEmail,
	sales.ErrInvalidQuantity,
	sales.ErrInvalidItemPrice,
	sales.ErrEmptyItemProduct,
	sales.ErrInvalidOrderStatus,
	sales.ErrInvalidPaymentStatus,
}

// writeError maps err to a status and body. Unrecognized errors are logged
// and answered with fallback so store diagnostics never reach the client.
func writeError(c *gin.Context, err error, fallback string) {
	var conflict *customer.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, gin.H{
			"message":    conflict.Message,
			"_id":        conflict.ID,
			conflict.Key: conflict.Value,
		})
		return
	}

	for _, nf := range notFoundMessages {
		if errors.Is(err, nf.err) {
			c.JSON(http.StatusNotFound, gin.H{"message": nf.message})
			return
		}
	}

	for _, v := range validationErrors {
		if errors.Is(err, v) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
	}

	log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

// badRequest answers a body or parameter that could not be decoded.
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}
