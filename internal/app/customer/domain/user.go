package domain

import "strings"

// Role grants access to the admin console.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// ParseRole validates a role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// User is a registered storefront account. Identity itself is managed
// by the external auth provider; this record keeps profile and role.
type User struct {
	Email  string
	Name   string
	Role   Role
	Image  string
	Mobile string
}

// Validate checks a registration. New accounts default to the User role.
func (u *User) Validate() error {
	u.Email = strings.TrimSpace(u.Email)
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	_, err := ParseRole(string(u.Role))
	return err
}

// Profile holds the self-service fields of a user.
type Profile struct {
	Name   string
	Mobile string
	Image  string
}

// ValidateVoucher checks a discount voucher percentage.
func ValidateVoucher(v int) error {
	if v < 0 || v > 100 {
		return ErrInvalidVoucher
	}
	return nil
}
