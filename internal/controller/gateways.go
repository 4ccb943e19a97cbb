package controller

import (
	"context"
	"net/url"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
	"github.com/Shalom-platinum/E-commerce/internal/gateway"
)

// The controllers consume gateways through these narrow interfaces so
// tests can script backends without a network.

// CatalogGateway is the customer-facing slice of the catalog API.
type CatalogGateway interface {
	ListProducts(ctx context.Context, filters url.Values) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int) (domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListReviews(ctx context.Context, productID int) ([]domain.Review, error)
	AddReview(ctx context.Context, productID, rating int, comment string) error
}

// AdminCatalogGateway adds the staff-only catalog mutations.
type AdminCatalogGateway interface {
	ListProducts(ctx context.Context, filters url.Values) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateProduct(ctx context.Context, form gateway.ProductForm) (domain.Product, error)
	UpdateProduct(ctx context.Context, id int, form gateway.ProductForm) (domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
	CreateCategory(ctx context.Context, name, description string) (domain.Category, error)
	UpdateCategory(ctx context.Context, id int, name, description string) (domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

// CartGateway is the cart API.
type CartGateway interface {
	Get(ctx context.Context) (domain.Cart, error)
	AddItem(ctx context.Context, productID, quantity int) error
	RemoveItem(ctx context.Context, productID int) error
	Clear(ctx context.Context) error
}

// OrdersGateway is the order API, staff operations included.
type OrdersGateway interface {
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id int) (domain.Order, error)
	CreateFromCart(ctx context.Context, shippingAddress, billingAddress string) (domain.Order, error)
	Cancel(ctx context.Context, id int) error
	UpdateStatus(ctx context.Context, id int, status string) error
	UpdatePaymentStatus(ctx context.Context, id int, paymentStatus string) error
}

// AddressGateway is the address-book API.
type AddressGateway interface {
	List(ctx context.Context) ([]domain.Address, error)
	Create(ctx context.Context, form gateway.AddressForm) (domain.Address, error)
	Delete(ctx context.Context, id int) error
}

// ProfileGateway is the profile-update slice of the accounts API.
type ProfileGateway interface {
	UpdateProfile(ctx context.Context, form gateway.ProfileForm) (domain.User, error)
}

// UserAdminGateway is the staff-only slice of the accounts API.
type UserAdminGateway interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	SetStaff(ctx context.Context, userID int, isStaff bool) error
}

// RecommendGateway is the recommendation service.
type RecommendGateway interface {
	ForProduct(ctx context.Context, productID, n int) (domain.RecommendationSet, error)
	ForUser(ctx context.Context, userID, n int) (domain.RecommendationSet, error)
	Popular(ctx context.Context, n int) (domain.RecommendationSet, error)
}

// TrackingGateway records product interactions.
type TrackingGateway interface {
	TrackView(ctx context.Context, productID int) error
}

// AdminPaymentsGateway is the staff payment-operations API.
type AdminPaymentsGateway interface {
	DashboardStats(ctx context.Context) (domain.DashboardStats, error)
	PendingOrders(ctx context.Context, page, pageSize int, status string) (domain.PendingOrdersPage, error)
	OrderDetails(ctx context.Context, orderID int) (domain.AdminOrderDetail, error)
	Analytics(ctx context.Context) (domain.PaymentAnalytics, error)
}
