package domain

import "errors"

// Domain errors as sentinel values
var (
	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrEmptyEmail     = errors.New("email cannot be empty")
	ErrInvalidRole    = errors.New("unknown role")
	ErrInvalidVoucher = errors.New("discount voucher must be between 0 and 100")

	// Cart errors
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyProductID   = errors.New("product id cannot be empty")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrInvalidCartPrice = errors.New("price cannot be negative")

	// Patient errors
	ErrPatientNotFound  = errors.New("patient not found")
	ErrEmptyPatientName = errors.New("patient name cannot be empty")
	ErrInvalidAge       = errors.New("age cannot be negative")
)

// ConflictError reports an insert that collided with an existing record
// on a unique key. It carries the existing record's identifying fields.
type ConflictError struct {
	Message string
	ID      string
	Key     string
	Value   string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewUserConflict reports an email that is already registered.
func NewUserConflict(id, email string) *ConflictError {
	return &ConflictError{Message: "User already exists", ID: id, Key: "email", Value: email}
}

// NewCartConflict reports a product already present in a customer's cart.
func NewCartConflict(id, productID string) *ConflictError {
	return &ConflictError{Message: "Product already in cart", ID: id, Key: "productId", Value: productID}
}
