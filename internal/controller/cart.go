package controller

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
	"github.com/Shalom-platinum/E-commerce/internal/gateway"
)

// Cart drives the cart and checkout screen. It is the one controller
// with a cross-view coupling: the number of cart items is pushed upward
// through a setter so the shell's nav badge reflects it without the
// shell owning cart state. Only this controller ever writes that count.
type Cart struct {
	view

	carts     CartGateway
	orders    OrdersGateway
	addresses AddressGateway
	log       zerolog.Logger

	// onBadge publishes the item count upward. Nil is allowed.
	onBadge func(int)

	cart             domain.Cart
	addressBook      []domain.Address
	shippingID       int
	billingID        int
	addressLoadError error
}

// NewCart creates the cart controller. onBadge receives every item
// count change and may be nil.
func NewCart(carts CartGateway, orders OrdersGateway, addresses AddressGateway, onBadge func(int), log zerolog.Logger) *Cart {
	return &Cart{carts: carts, orders: orders, addresses: addresses, onBadge: onBadge, log: log}
}

// Load fetches the cart and the address book concurrently; neither
// fetch waits on the other. The cart is fully replaced, never merged.
// On address-book success both selections default to the first address.
// An address-book failure is non-fatal: checkout is impossible without
// addresses, but the cart itself still renders.
func (c *Cart) Load(ctx context.Context) error {
	gen := c.begin()

	var (
		wg        sync.WaitGroup
		cart      domain.Cart
		cartErr   error
		addrs     []domain.Address
		addrErr   error
		addrsDone bool
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		cart, cartErr = c.carts.Get(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		addrs, addrErr = c.addresses.List(ctx)
		addrsDone = addrErr == nil
		if addrErr != nil {
			c.log.Warn().Err(addrErr).Msg("load addresses")
		}
	}()

	wg.Wait()

	applied := c.complete(gen, cartErr, func() {
		c.cart = cart
		c.addressLoadError = addrErr
		if addrsDone {
			c.addressBook = addrs
			if len(addrs) > 0 {
				c.shippingID = addrs[0].ID
				c.billingID = addrs[0].ID
			} else {
				c.shippingID = 0
				c.billingID = 0
			}
		}
	})
	if applied && cartErr == nil {
		c.publishBadge()
	}
	return cartErr
}

// RemoveItem removes a product line and refetches the cart in full;
// the displayed count afterwards is the server's count, not a local
// decrement.
func (c *Cart) RemoveItem(ctx context.Context, productID int) error {
	return mutateThenRefetch(ctx,
		func(ctx context.Context) error { return c.carts.RemoveItem(ctx, productID) },
		c.refetchCart,
	)
}

func (c *Cart) refetchCart(ctx context.Context) error {
	cart, err := c.carts.Get(ctx)
	if err != nil {
		return err
	}
	c.locked(func() { c.cart = cart })
	c.publishBadge()
	return nil
}

// AddAddress validates the form locally (label, street, and city are
// required; a violation makes no network call), saves the address, and
// appends the returned canonical record to the local book. This append
// is the one deliberate exception to refetch-over-patch: the response
// already carries the created record. The new address is auto-selected
// for both shipping and billing.
func (c *Cart) AddAddress(ctx context.Context, form gateway.AddressForm) (domain.Address, error) {
	if err := checkForm(form); err != nil {
		return domain.Address{}, err
	}
	created, err := c.addresses.Create(ctx, form)
	if err != nil {
		return domain.Address{}, err
	}
	c.locked(func() {
		c.addressBook = append(c.addressBook, created)
		c.shippingID = created.ID
		c.billingID = created.ID
	})
	return created, nil
}

// SelectShipping picks the shipping address. Selection is ephemeral UI
// state, never persisted.
func (c *Cart) SelectShipping(addressID int) {
	c.locked(func() { c.shippingID = addressID })
}

// SelectBilling picks the billing address.
func (c *Cart) SelectBilling(addressID int) {
	c.locked(func() { c.billingID = addressID })
}

// Checkout submits an order referencing the server-side cart. The
// client sends no line items, only the flattened address strings. On
// success the local cart is cleared optimistically (not refetched) and
// a zero count is pushed to the badge. On failure cart and badge stay
// exactly as they were: the optimistic clear happens strictly after
// gateway success.
func (c *Cart) Checkout(ctx context.Context) (domain.Order, error) {
	var (
		shipping domain.Address
		billing  domain.Address
		found    int
	)
	c.locked(func() {
		if c.shippingID == 0 || c.billingID == 0 {
			return
		}
		for _, a := range c.addressBook {
			if a.ID == c.shippingID {
				shipping = a
				found++
			}
			if a.ID == c.billingID {
				billing = a
				found++
			}
		}
	})
	if found < 2 {
		return domain.Order{}, validationErrorf("please select shipping and billing addresses")
	}

	order, err := c.orders.CreateFromCart(ctx, shipping.Flatten(), billing.Flatten())
	if err != nil {
		return domain.Order{}, err
	}

	c.locked(func() { c.cart = domain.Cart{Items: []domain.CartItem{}} })
	c.publishBadge()
	c.log.Info().Str("order_number", order.OrderNumber).Msg("order created")
	return order, nil
}

// Cart returns the current cart snapshot.
func (c *Cart) Cart() domain.Cart {
	var cart domain.Cart
	c.locked(func() { cart = c.cart })
	return cart
}

// Total recomputes subtotal plus shipping from the current items on
// every call; it is never cached.
func (c *Cart) Total() domain.Money {
	return c.Cart().Total()
}

// ItemCount returns the number of cart lines.
func (c *Cart) ItemCount() int {
	var n int
	c.locked(func() { n = c.cart.ItemCount() })
	return n
}

// Addresses returns the local address book.
func (c *Cart) Addresses() []domain.Address {
	var out []domain.Address
	c.locked(func() { out = append(out, c.addressBook...) })
	return out
}

// Selections returns the current shipping and billing address ids;
// zero means unselected.
func (c *Cart) Selections() (shippingID, billingID int) {
	c.locked(func() {
		shippingID = c.shippingID
		billingID = c.billingID
	})
	return shippingID, billingID
}

func (c *Cart) publishBadge() {
	if c.onBadge == nil {
		return
	}
	c.onBadge(c.ItemCount())
}
