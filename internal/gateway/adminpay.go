package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
	"github.com/Shalom-platinum/E-commerce/internal/transport"
)

// AdminPayments covers the staff payment-operations endpoints.
type AdminPayments struct {
	client *transport.Client
}

// NewAdminPayments creates the admin payment-ops gateway.
func NewAdminPayments(client *transport.Client) *AdminPayments {
	return &AdminPayments{client: client}
}

// DashboardStats fetches the payment dashboard summary.
func (g *AdminPayments) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	resp, err := g.client.Get(ctx, "/orders/admin/dashboard/stats/", nil)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	return decodeOne[domain.DashboardStats](resp)
}

// PendingOrders fetches one page of pending-payment orders, optionally
// filtered by order status.
func (g *AdminPayments) PendingOrders(ctx context.Context, page, pageSize int, status string) (domain.PendingOrdersPage, error) {
	query := url.Values{
		"page":      []string{strconv.Itoa(page)},
		"page_size": []string{strconv.Itoa(pageSize)},
	}
	if status != "" {
		query.Set("status", status)
	}
	resp, err := g.client.Get(ctx, "/orders/admin/pending/", query)
	if err != nil {
		return domain.PendingOrdersPage{}, err
	}
	return decodeOne[domain.PendingOrdersPage](resp)
}

// OrderDetails fetches the full admin view of one order.
func (g *AdminPayments) OrderDetails(ctx context.Context, orderID int) (domain.AdminOrderDetail, error) {
	resp, err := g.client.Get(ctx, fmt.Sprintf("/orders/admin/order/%d/", orderID), nil)
	if err != nil {
		return domain.AdminOrderDetail{}, err
	}
	return decodeOne[domain.AdminOrderDetail](resp)
}

// Analytics fetches the payment analytics report.
func (g *AdminPayments) Analytics(ctx context.Context) (domain.PaymentAnalytics, error) {
	resp, err := g.client.Get(ctx, "/orders/admin/analytics/", nil)
	if err != nil {
		return domain.PaymentAnalytics{}, err
	}
	return decodeOne[domain.PaymentAnalytics](resp)
}
