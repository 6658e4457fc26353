package domain

import "strings"

// Product is a catalog item as submitted by the admin console.
type Product struct {
	ID            string
	Name          string
	Brand         string
	Category      string
	Gender        string
	Origin        string
	FrameMaterial string
	FrameSize     string
	FrameType     string
	Color         string
	LensMaterial  string
	Prescription  string
	Dimensions    string
	Warranty      string
	Description   string
	Image         string
	Status        StockStatus
	Price         Price
}

// Validate checks the fields every stored product must carry.
func (p *Product) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)

	if p.Name == "" {
		return ErrEmptyName
	}
	if p.Category == "" {
		return ErrInvalidCategory
	}
	if _, err := ParseStockStatus(string(p.Status)); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = StatusInStock
	}
	if p.Price.Amount.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}

// Draft is the unvalidated product form posted by the admin console.
type Draft struct {
	Name            string
	Brand           string
	Category        string
	Gender          string
	Origin          string
	FrameMaterial   string
	FrameSize       string
	FrameType       string
	Color           string
	LensMaterial    string
	Prescription    string
	Dimensions      string
	Warranty        string
	Description     string
	Image           string
	Status          string
	PriceAmount     string
	Currency        string
	DiscountPercent *float64
}

// Build validates the draft and returns the product it describes.
func (d *Draft) Build() (*Product, error) {
	price, err := NewPrice(d.PriceAmount, d.Currency, d.DiscountPercent)
	if err != nil {
		return nil, err
	}

	p := &Product{
		Name:          d.Name,
		Brand:         d.Brand,
		Category:      d.Category,
		Gender:        d.Gender,
		Origin:        d.Origin,
		FrameMaterial: d.FrameMaterial,
		FrameSize:     d.FrameSize,
		FrameType:     d.FrameType,
		Color:         d.Color,
		LensMaterial:  d.LensMaterial,
		Prescription:  d.Prescription,
		Dimensions:    d.Dimensions,
		Warranty:      d.Warranty,
		Description:   d.Description,
		Image:         d.Image,
		Status:        StockStatus(d.Status),
		Price:         price,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
