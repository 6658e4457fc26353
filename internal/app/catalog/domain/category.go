package domain

import "strings"

// Category groups products on the storefront.
type Category struct {
	ID          string
	Name        string
	Image       string
	Description string
}

// Validate checks the category fields.
func (c *Category) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	return nil
}

// Banner is a storefront hero image.
type Banner struct {
	ID     string
	Title  string
	Image  string
	Link   string
	Status BannerStatus
}

// Validate checks the banner fields. New banners default to added.
func (b *Banner) Validate() error {
	if strings.TrimSpace(b.Image) == "" {
		return ErrEmptyBannerImage
	}
	if b.Status == "" {
		b.Status = BannerAdded
	}
	_, err := ParseBannerStatus(string(b.Status))
	return err
}
