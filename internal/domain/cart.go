package domain

// ShippingCost is the flat shipping fee added to every order total.
// It mirrors the backend's fixed shipping charge.
const ShippingCost Money = 10.00

// CartItem is one product line in the cart with a snapshot of the
// product at fetch time.
type CartItem struct {
	ID       int     `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is the item price multiplied by its quantity.
func (it CartItem) Subtotal() Money {
	return it.Product.Price * Money(it.Quantity)
}

// Cart is the server-owned shopping cart. It is fully replaced on every
// fetch; the client never merges items locally.
type Cart struct {
	ID    int        `json:"id,omitempty"`
	Items []CartItem `json:"items"`
}

// ItemCount returns the number of distinct lines in the cart.
func (c Cart) ItemCount() int {
	return len(c.Items)
}

// Subtotal sums price times quantity over all items. It is recomputed on
// every call rather than cached, so it can never go stale relative to
// the items themselves.
func (c Cart) Subtotal() Money {
	var sum Money
	for _, it := range c.Items {
		sum += it.Subtotal()
	}
	return sum
}

// Total is the subtotal plus the flat shipping fee.
func (c Cart) Total() Money {
	return c.Subtotal() + ShippingCost
}
