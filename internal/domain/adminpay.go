package domain

import "time"

// PaymentBucket is one payment-status slice of the dashboard totals.
type PaymentBucket struct {
	Count  int   `json:"count"`
	Amount Money `json:"amount"`
}

// DashboardStats is the admin payment dashboard summary.
type DashboardStats struct {
	Pending       PaymentBucket  `json:"pending"`
	Paid          PaymentBucket  `json:"paid"`
	Failed        PaymentBucket  `json:"failed"`
	RecentChanges map[string]int `json:"payment_changes_last_30_days,omitempty"`
	TotalRevenue  Money          `json:"total_revenue"`
	Timestamp     time.Time      `json:"timestamp,omitempty"`
}

// PendingOrder is one row of the pending-payments listing.
type PendingOrder struct {
	ID            int       `json:"id"`
	OrderNumber   string    `json:"order_number"`
	User          string    `json:"user"`
	UserEmail     string    `json:"user_email"`
	TotalAmount   Money     `json:"total_amount"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
	ItemsCount    int       `json:"items_count"`
}

// PendingOrdersPage is the paginated envelope around pending orders.
type PendingOrdersPage struct {
	Count      int            `json:"count"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
	Results    []PendingOrder `json:"results"`
}

// AdminOrderItem is a flattened line item in the admin order detail.
type AdminOrderItem struct {
	ID          int       `json:"id"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Price       Money     `json:"price"`
	Subtotal    Money     `json:"subtotal"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// OrderEvent is one tracking or payment history entry.
type OrderEvent struct {
	Type        string    `json:"type,omitempty"`
	Status      string    `json:"status,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdminOrderUser identifies the customer on an admin order detail.
type AdminOrderUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

// AdminOrderDetail is the full admin view of one order.
type AdminOrderDetail struct {
	ID              int              `json:"id"`
	OrderNumber     string           `json:"order_number"`
	User            AdminOrderUser   `json:"user"`
	Status          string           `json:"status"`
	PaymentStatus   string           `json:"payment_status"`
	TotalAmount     Money            `json:"total_amount"`
	TaxAmount       Money            `json:"tax_amount"`
	ShippingCost    Money            `json:"shipping_cost"`
	ShippingAddress string           `json:"shipping_address"`
	BillingAddress  string           `json:"billing_address"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	Items           []AdminOrderItem `json:"items"`
	Tracking        []OrderEvent     `json:"tracking,omitempty"`
	PaymentEvents   []OrderEvent     `json:"payment_events,omitempty"`
}

// DailyPayments is one day of confirmed/failed payment events.
type DailyPayments struct {
	Confirmed int `json:"confirmed"`
	Failed    int `json:"failed"`
}

// PaymentAnalytics is the admin payment analytics report.
type PaymentAnalytics struct {
	StatusDistribution map[string]PaymentBucket `json:"status_distribution"`
	DailyPaymentData   map[string]DailyPayments `json:"daily_payment_data,omitempty"`
	SuccessRate        float64                  `json:"success_rate"`
}
