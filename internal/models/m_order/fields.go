package m_order

// Field name constants for the orders collection.
const (
	CollectionName = "orders"

	ID            = "_id"
	CustomerInfo  = "customerInfo"
	CustomerName  = "customerInfo.name"
	CustomerEmail = "customerInfo.email"
	Division      = "customerInfo.division"
	Products      = "products"
	TotalPrice    = "totalPrice"
	PaymentStatus = "paymentStatus"
	OrderStatus   = "orderStatus"
	Date          = "date"

	// Line item fields, relative to an unwound products element.
	ItemProductID = "products.productId"
	ItemName      = "products.name"
	ItemBrand     = "products.brand"
	ItemImage     = "products.image"
	ItemQuantity  = "products.quantity"
	ItemPrice     = "products.price"
	ItemSubtotal  = "products.subtotal"
)
