package controller

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
)

// Orders drives the customer order-history screen: the list of the
// authenticated customer's own orders, an expandable detail selection,
// and cancellation for orders still in their initial state.
type Orders struct {
	view

	orders OrdersGateway
	log    zerolog.Logger

	list     []domain.Order
	selected *domain.Order
}

func NewOrders(orders OrdersGateway, log zerolog.Logger) *Orders {
	return &Orders{orders: orders, log: log}
}

// Load fetches the customer's orders. Any prior detail selection is
// dropped; the referenced order may have changed server-side.
func (o *Orders) Load(ctx context.Context) error {
	gen := o.begin()
	list, err := o.orders.List(ctx)
	o.complete(gen, err, func() {
		o.list = list
		o.selected = nil
	})
	return err
}

// Select fetches full detail for one order and marks it expanded.
func (o *Orders) Select(ctx context.Context, orderID int) error {
	order, err := o.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	o.locked(func() { o.selected = &order })
	return nil
}

// ClearSelection collapses the detail view.
func (o *Orders) ClearSelection() {
	o.locked(func() { o.selected = nil })
}

// Cancel cancels an order and refetches the whole list so the new
// status comes from the server. Whether cancellation is offered at all
// is decided by domain.Order.CanCancel; the server remains the
// authority and may still reject the request.
func (o *Orders) Cancel(ctx context.Context, orderID int) error {
	return mutateThenRefetch(ctx,
		func(ctx context.Context) error { return o.orders.Cancel(ctx, orderID) },
		o.Load,
	)
}

// List returns the loaded orders.
func (o *Orders) List() []domain.Order {
	var out []domain.Order
	o.locked(func() { out = append(out, o.list...) })
	return out
}

// Selected returns the expanded order detail, or nil.
func (o *Orders) Selected() *domain.Order {
	var sel *domain.Order
	o.locked(func() {
		if o.selected != nil {
			cp := *o.selected
			sel = &cp
		}
	})
	return sel
}
