// Package domain holds the client-side projections of backend-owned
// resources. Every type here is a transient, possibly-stale snapshot;
// the backend is always authoritative.
package domain

import "time"

// Category groups products in the catalog.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Product is a catalog entry as seen by customers. Admin-only fields
// (cost price, SKU, attributes, active flag) are populated only on
// staff-scoped responses.
type Product struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         Money     `json:"price"`
	Stock         int       `json:"stock"`
	Category      *Category `json:"category,omitempty"`
	Image         string    `json:"image,omitempty"`
	AverageRating float64   `json:"average_rating,omitempty"`

	// Admin variant fields.
	CostPrice Money  `json:"cost_price,omitempty"`
	SKU       string `json:"sku,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	Material  string `json:"material,omitempty"`
	IsActive  bool   `json:"is_active,omitempty"`
}

// InStock reports whether the product can currently be added to a cart.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// Review is a customer rating attached to a product.
type Review struct {
	ID        int       `json:"id,omitempty"`
	User      string    `json:"user,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
