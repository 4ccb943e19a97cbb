package domain

import "time"

// Order status values. The client treats status as opaque server state
// and performs no transition validation of its own; these constants only
// name the values the backend is known to emit.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// OrderStatuses is the closed set of target statuses the admin order
// screen offers, independent of an order's current status. Whether a
// given transition is legal is the backend's call.
var OrderStatuses = []string{
	OrderPending,
	OrderProcessing,
	OrderShipped,
	OrderDelivered,
	OrderCancelled,
}

// Payment status values.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// OrderItem is a line item frozen at order-creation time.
type OrderItem struct {
	ID          int     `json:"id"`
	Product     Product `json:"product,omitempty"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       Money   `json:"price"`
}

// Subtotal is the frozen price multiplied by quantity.
func (it OrderItem) Subtotal() Money {
	return it.Price * Money(it.Quantity)
}

// Order is an order header plus its line items.
type Order struct {
	ID              int         `json:"id"`
	OrderNumber     string      `json:"order_number"`
	User            *User       `json:"user,omitempty"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"payment_status"`
	TotalAmount     Money       `json:"total_amount"`
	TaxAmount       Money       `json:"tax_amount,omitempty"`
	ShippingCost    Money       `json:"shipping_cost,omitempty"`
	ShippingAddress string      `json:"shipping_address,omitempty"`
	BillingAddress  string      `json:"billing_address,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at,omitempty"`
}

// CanCancel reports whether the customer view should offer a cancel
// action for this order. Only pending orders are offered cancellation;
// the backend independently enforces its own rules.
func (o Order) CanCancel() bool {
	return o.Status == OrderPending
}
