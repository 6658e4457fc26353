package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrEmptyOrder           = errors.New("order must contain at least one product")
	ErrEmptyCustomerEmail   = errors.New("customer email cannot be empty")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrInvalidItemPrice     = errors.New("unit price must be a non-negative number")
	ErrEmptyItemProduct     = errors.New("line item product id cannot be empty")
	ErrInvalidOrderStatus   = errors.New("unknown order status")
	ErrInvalidPaymentStatus = errors.New("unknown payment status")
)
