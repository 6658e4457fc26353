package m_user

// Field name constants for the users collection.
const (
	CollectionName = "users"

	ID              = "_id"
	Email           = "email"
	Name            = "name"
	Role            = "role"
	Image           = "image"
	Mobile          = "mobile"
	DiscountVoucher = "discountVoucher"
)
