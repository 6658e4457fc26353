package m_cart

// Field name constants for the carts collection.
const (
	CollectionName = "carts"

	ID          = "_id"
	Email       = "email"
	ProductID   = "productId"
	ProductName = "productName"
	BrandName   = "brandName"
	Image       = "image"
	Price       = "price"
	Quantity    = "quantity"
)
