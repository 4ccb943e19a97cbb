package controller

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
)

// AdminOrders drives the staff order-management screen: every order in
// the system, an optional status filter, and status transitions.
type AdminOrders struct {
	view

	orders OrdersGateway
	log    zerolog.Logger

	list         []domain.Order
	statusFilter string
	selected     *domain.Order
}

func NewAdminOrders(orders OrdersGateway, log zerolog.Logger) *AdminOrders {
	return &AdminOrders{orders: orders, log: log}
}

// Load fetches all orders. Visibility scoping is the server's job; a
// staff credential gets everything back from the same endpoint.
func (a *AdminOrders) Load(ctx context.Context) error {
	gen := a.begin()
	list, err := a.orders.List(ctx)
	a.complete(gen, err, func() {
		a.list = list
		a.selected = nil
	})
	return err
}

// SetStatusFilter narrows the visible orders to one status. An empty
// filter shows everything. Filtering is local only.
func (a *AdminOrders) SetStatusFilter(status string) {
	a.locked(func() { a.statusFilter = status })
}

// Select marks one order expanded, from the already loaded list.
func (a *AdminOrders) Select(orderID int) {
	a.locked(func() {
		a.selected = nil
		for i := range a.list {
			if a.list[i].ID == orderID {
				cp := a.list[i]
				a.selected = &cp
				return
			}
		}
	})
}

// ClearSelection collapses the detail view.
func (a *AdminOrders) ClearSelection() {
	a.locked(func() { a.selected = nil })
}

// UpdateStatus moves an order to a new status. The status must be one
// of the known order states; anything else is rejected locally. After
// the server accepts, the list is refetched and the detail selection
// dropped, since the selected snapshot is stale.
func (a *AdminOrders) UpdateStatus(ctx context.Context, orderID int, status string) error {
	if !slices.Contains(domain.OrderStatuses, status) {
		return validationErrorf("unknown order status %q", status)
	}
	return mutateThenRefetch(ctx,
		func(ctx context.Context) error { return a.orders.UpdateStatus(ctx, orderID, status) },
		a.Load,
	)
}

// Orders returns the loaded orders with the status filter applied.
func (a *AdminOrders) Orders() []domain.Order {
	var out []domain.Order
	a.locked(func() {
		for _, o := range a.list {
			if a.statusFilter == "" || o.Status == a.statusFilter {
				out = append(out, o)
			}
		}
	})
	return out
}

// Selected returns the expanded order, or nil.
func (a *AdminOrders) Selected() *domain.Order {
	var sel *domain.Order
	a.locked(func() {
		if a.selected != nil {
			cp := *a.selected
			sel = &cp
		}
	})
	return sel
}
