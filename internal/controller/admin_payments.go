package controller

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
)

// PaymentsTab names one pane of the payment-operations screen.
type PaymentsTab string

const (
	TabDashboard PaymentsTab = "dashboard"
	TabPending   PaymentsTab = "pending"
	TabAnalytics PaymentsTab = "analytics"
)

const defaultPendingPageSize = 20

// AdminPayments drives the staff payment-operations screen: a
// dashboard of payment buckets, a paginated pending-orders queue with
// per-order drilldown, and an analytics pane. Each tab loads its own
// data on demand.
type AdminPayments struct {
	view

	payments AdminPaymentsGateway
	orders   OrdersGateway
	log      zerolog.Logger

	tab          PaymentsTab
	stats        domain.DashboardStats
	pending      domain.PendingOrdersPage
	page         int
	pageSize     int
	statusFilter string
	detail       *domain.AdminOrderDetail
	analytics    domain.PaymentAnalytics
}

func NewAdminPayments(payments AdminPaymentsGateway, orders OrdersGateway, log zerolog.Logger) *AdminPayments {
	return &AdminPayments{
		payments: payments,
		orders:   orders,
		log:      log,
		tab:      TabDashboard,
		page:     1,
		pageSize: defaultPendingPageSize,
	}
}

// Load fetches the current tab's data.
func (a *AdminPayments) Load(ctx context.Context) error {
	switch a.Tab() {
	case TabPending:
		return a.loadPending(ctx)
	case TabAnalytics:
		return a.loadAnalytics(ctx)
	default:
		return a.loadDashboard(ctx)
	}
}

// SwitchTab changes the active pane and loads it.
func (a *AdminPayments) SwitchTab(ctx context.Context, tab PaymentsTab) error {
	a.locked(func() { a.tab = tab })
	return a.Load(ctx)
}

func (a *AdminPayments) loadDashboard(ctx context.Context) error {
	gen := a.begin()
	stats, err := a.payments.DashboardStats(ctx)
	a.complete(gen, err, func() { a.stats = stats })
	return err
}

func (a *AdminPayments) loadPending(ctx context.Context) error {
	var (
		page, pageSize int
		status         string
	)
	a.locked(func() {
		page = a.page
		pageSize = a.pageSize
		status = a.statusFilter
	})
	gen := a.begin()
	pending, err := a.payments.PendingOrders(ctx, page, pageSize, status)
	a.complete(gen, err, func() { a.pending = pending })
	return err
}

func (a *AdminPayments) loadAnalytics(ctx context.Context) error {
	gen := a.begin()
	analytics, err := a.payments.Analytics(ctx)
	a.complete(gen, err, func() { a.analytics = analytics })
	return err
}

// SetPage moves the pending queue to a page and reloads it.
func (a *AdminPayments) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	a.locked(func() { a.page = page })
	return a.loadPending(ctx)
}

// SetStatusFilter narrows the pending queue by payment status and
// reloads from page one. Unlike the local order filters, this one is
// applied server-side.
func (a *AdminPayments) SetStatusFilter(ctx context.Context, status string) error {
	a.locked(func() {
		a.statusFilter = status
		a.page = 1
	})
	return a.loadPending(ctx)
}

// OpenOrder fetches full payment detail for one order.
func (a *AdminPayments) OpenOrder(ctx context.Context, orderID int) error {
	detail, err := a.payments.OrderDetails(ctx, orderID)
	if err != nil {
		return err
	}
	a.locked(func() { a.detail = &detail })
	return nil
}

// CloseOrder collapses the detail panel.
func (a *AdminPayments) CloseOrder() {
	a.locked(func() { a.detail = nil })
}

// MarkPayment records a payment outcome for an order. Only the two
// terminal outcomes are accepted. On success the detail panel is
// closed, since its snapshot is stale, and the active tab reloads.
func (a *AdminPayments) MarkPayment(ctx context.Context, orderID int, paymentStatus string) error {
	if paymentStatus != domain.PaymentPaid && paymentStatus != domain.PaymentFailed {
		return validationErrorf("payment status must be %q or %q", domain.PaymentPaid, domain.PaymentFailed)
	}
	return mutateThenRefetch(ctx,
		func(ctx context.Context) error {
			return a.orders.UpdatePaymentStatus(ctx, orderID, paymentStatus)
		},
		func(ctx context.Context) error {
			a.CloseOrder()
			return a.Load(ctx)
		},
	)
}

// Tab returns the active pane.
func (a *AdminPayments) Tab() PaymentsTab {
	var tab PaymentsTab
	a.locked(func() { tab = a.tab })
	return tab
}

// Stats returns the dashboard buckets.
func (a *AdminPayments) Stats() domain.DashboardStats {
	var stats domain.DashboardStats
	a.locked(func() { stats = a.stats })
	return stats
}

// Pending returns the current pending-orders page.
func (a *AdminPayments) Pending() domain.PendingOrdersPage {
	var page domain.PendingOrdersPage
	a.locked(func() { page = a.pending })
	return page
}

// Detail returns the open order's payment detail, or nil.
func (a *AdminPayments) Detail() *domain.AdminOrderDetail {
	var sel *domain.AdminOrderDetail
	a.locked(func() {
		if a.detail != nil {
			cp := *a.detail
			sel = &cp
		}
	})
	return sel
}

// Analytics returns the analytics pane data.
func (a *AdminPayments) Analytics() domain.PaymentAnalytics {
	var out domain.PaymentAnalytics
	a.locked(func() { out = a.analytics })
	return out
}
