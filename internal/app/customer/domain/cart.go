package domain

import "strings"

// CartItem is one product line in a customer's cart.
type CartItem struct {
	Email       string
	ProductID   string
	ProductName string
	BrandName   string
	Image       string
	Price       float64
	Quantity    int
}

// Validate checks a cart line. Quantity defaults to 1.
func (c *CartItem) Validate() error {
	c.Email = strings.TrimSpace(c.Email)
	c.ProductID = strings.TrimSpace(c.ProductID)

	if c.Email == "" {
		return ErrEmptyEmail
	}
	if c.ProductID == "" {
		return ErrEmptyProductID
	}
	if c.Quantity == 0 {
		c.Quantity = 1
	}
	if c.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if c.Price < 0 {
		return ErrInvalidCartPrice
	}
	return nil
}
