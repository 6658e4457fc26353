package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Customer is the buyer snapshot taken at checkout.
type Customer struct {
	Name     string
	Email    string
	Phone    string
	Division string
	Address  string
}

// Item is one order line. Name, brand, image and price are copied from
// the catalog at checkout so later catalog edits leave the order intact.
type Item struct {
	ProductID string
	Name      string
	Brand     string
	Image     string
	Quantity  int
	Price     decimal.Decimal
	Subtotal  decimal.Decimal
}

// Order is a placed order.
type Order struct {
	Customer      Customer
	Items         []Item
	Total         decimal.Decimal
	PaymentStatus PaymentStatus
	OrderStatus   OrderStatus
	Date          time.Time
}

// NewOrder validates the checkout and computes line subtotals and the total.
// New orders are Pending and unpaid.
func NewOrder(customer Customer, items []Item, now time.Time) (*Order, error) {
	customer.Email = strings.TrimSpace(customer.Email)
	if customer.Email == "" {
		return nil, ErrEmptyCustomerEmail
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	o := &Order{
		Customer:      customer,
		Items:         make([]Item, 0, len(items)),
		Total:         decimal.Zero,
		PaymentStatus: PaymentUnpaid,
		OrderStatus:   OrderPending,
		Date:          now,
	}

	for _, it := range items {
		if strings.TrimSpace(it.ProductID) == "" {
			return nil, ErrEmptyItemProduct
		}
		if it.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if it.Price.IsNegative() {
			return nil, ErrInvalidItemPrice
		}
		it.Subtotal = it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))).Round(2)
		o.Total = o.Total.Add(it.Subtotal)
		o.Items = append(o.Items, it)
	}

	return o, nil
}

// TotalQuantity returns the number of units across all lines.
func (o *Order) TotalQuantity() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}
