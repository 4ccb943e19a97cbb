package gateway

import (
	"context"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
	"github.com/Shalom-platinum/E-commerce/internal/transport"
)

// Cart covers the server-side shopping cart.
type Cart struct {
	client *transport.Client
}

// NewCart creates the cart gateway.
func NewCart(client *transport.Client) *Cart {
	return &Cart{client: client}
}

// Get fetches the current user's cart.
func (g *Cart) Get(ctx context.Context) (domain.Cart, error) {
	resp, err := g.client.Get(ctx, "/carts/", nil)
	if err != nil {
		return domain.Cart{}, err
	}
	return decodeOne[domain.Cart](resp)
}

// AddItem adds quantity units of a product to the cart.
func (g *Cart) AddItem(ctx context.Context, productID, quantity int) error {
	resp, err := g.client.Post(ctx, "/carts/add_item/", map[string]int{
		"product_id": productID,
		"quantity":   quantity,
	})
	if err != nil {
		return err
	}
	return discard(resp)
}

// RemoveItem removes a product line from the cart.
func (g *Cart) RemoveItem(ctx context.Context, productID int) error {
	resp, err := g.client.Post(ctx, "/carts/remove_item/", map[string]int{
		"product_id": productID,
	})
	if err != nil {
		return err
	}
	return discard(resp)
}

// Clear empties the cart.
func (g *Cart) Clear(ctx context.Context) error {
	resp, err := g.client.Post(ctx, "/carts/clear/", nil)
	if err != nil {
		return err
	}
	return discard(resp)
}
