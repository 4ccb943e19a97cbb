package gateway

import (
	"context"
	"fmt"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
	"github.com/Shalom-platinum/E-commerce/internal/transport"
)

// Orders covers order listing, creation from the server-side cart, and
// status mutations.
type Orders struct {
	client *transport.Client
}

// NewOrders creates the orders gateway.
func NewOrders(client *transport.Client) *Orders {
	return &Orders{client: client}
}

// List fetches the current user's orders.
func (g *Orders) List(ctx context.Context) ([]domain.Order, error) {
	resp, err := g.client.Get(ctx, "/orders/", nil)
	if err != nil {
		return nil, err
	}
	return DecodeList[domain.Order](resp)
}

// Get fetches one order with its line items.
func (g *Orders) Get(ctx context.Context, id int) (domain.Order, error) {
	resp, err := g.client.Get(ctx, fmt.Sprintf("/orders/%d/", id), nil)
	if err != nil {
		return domain.Order{}, err
	}
	return decodeOne[domain.Order](resp)
}

// CreateFromCart creates an order from the authoritative server-side
// cart. The client sends only the flattened address strings; the line
// items are read from the cart on the backend.
func (g *Orders) CreateFromCart(ctx context.Context, shippingAddress, billingAddress string) (domain.Order, error) {
	resp, err := g.client.Post(ctx, "/orders/create_from_cart/", map[string]string{
		"shipping_address": shippingAddress,
		"billing_address":  billingAddress,
	})
	if err != nil {
		return domain.Order{}, err
	}
	return decodeOne[domain.Order](resp)
}

// Cancel cancels an order.
func (g *Orders) Cancel(ctx context.Context, id int) error {
	resp, err := g.client.Post(ctx, fmt.Sprintf("/orders/%d/cancel/", id), nil)
	if err != nil {
		return err
	}
	return discard(resp)
}

// UpdateStatus sets an order's status (staff only). The target status is
// not validated against the current one here; that enforcement, if any,
// belongs to the backend.
func (g *Orders) UpdateStatus(ctx context.Context, id int, status string) error {
	resp, err := g.client.Patch(ctx, fmt.Sprintf("/orders/%d/", id), map[string]string{
		"status": status,
	})
	if err != nil {
		return err
	}
	return discard(resp)
}

// UpdatePaymentStatus sets an order's payment status (staff only).
func (g *Orders) UpdatePaymentStatus(ctx context.Context, id int, paymentStatus string) error {
	resp, err := g.client.Post(ctx, fmt.Sprintf("/orders/%d/update_payment_status/", id), map[string]string{
		"payment_status": paymentStatus,
	})
	if err != nil {
		return err
	}
	return discard(resp)
}
