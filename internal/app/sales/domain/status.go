package domain

// OrderStatus is the fulfilment stage of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

// ParseOrderStatus validates an order status. Matching is exact.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return OrderStatus(s), nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

// PaymentStatus records whether an order has been paid.
// Only Paid orders count toward revenue.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "Paid"
)

// ParsePaymentStatus validates a payment status. Matching is exact.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentUnpaid, PaymentPaid:
		return PaymentStatus(s), nil
	default:
		return "", ErrInvalidPaymentStatus
	}
}
