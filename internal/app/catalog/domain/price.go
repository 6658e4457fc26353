package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Price is a catalog price. Amounts are exact decimals; they are written to
// the store as text so existing documents and new ones share one shape.
type Price struct {
	Amount   decimal.Decimal
	Currency string
	Discount *Discount
}

// Discount is a percentage reduction with its precomputed result.
type Discount struct {
	Percentage       decimal.Decimal
	DiscountedAmount decimal.Decimal
}

// NewPrice parses and validates a price.
// discountPercent may be nil for undiscounted products.
func NewPrice(amount, currency string, discountPercent *float64) (Price, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil || value.IsNegative() {
		return Price{}, ErrInvalidPrice
	}

	p := Price{Amount: value, Currency: strings.TrimSpace(currency)}

	if discountPercent != nil && *discountPercent != 0 {
		pct := decimal.NewFromFloat(*discountPercent)
		if pct.IsNegative() || pct.GreaterThan(hundred) {
			return Price{}, ErrInvalidDiscountPercent
		}
		p.Discount = &Discount{
			Percentage:       pct,
			DiscountedAmount: value.Sub(value.Mul(pct).Div(hundred)).Round(2),
		}
	}

	return p, nil
}

// AmountText returns the canonical text stored in price.amount.
func (p Price) AmountText() string {
	return p.Amount.String()
}

// Effective returns the discounted amount when a discount is set.
func (p Price) Effective() decimal.Decimal {
	if p.Discount != nil {
		return p.Discount.DiscountedAmount
	}
	return p.Amount
}
