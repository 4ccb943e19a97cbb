package controller

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
	"github.com/Shalom-platinum/E-commerce/internal/gateway"
)

var errNotFound = errors.New("not found")

// Scripted in-memory gateways. Each records the calls it receives
// behind a mutex so tests can assert on exactly what went over the
// wire, and each can be primed with canned results or errors.

type fakeCatalog struct {
	mu         sync.Mutex
	products   []domain.Product
	categories []domain.Category
	reviews    []domain.Review
	popular    domain.RecommendationSet

	productsErr   error
	categoriesErr error

	listCalls   int
	reviewAdds  []string
	created     []gateway.ProductForm
	updated     []gateway.ProductForm
	deletedIDs  []int
	createdCats []string
}

func (f *fakeCatalog) ListProducts(_ context.Context, _ url.Values) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.productsErr != nil {
		return nil, f.productsErr
	}
	return append([]domain.Product(nil), f.products...), nil
}

func (f *fakeCatalog) GetProduct(_ context.Context, id int) (domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, errNotFound
}

func (f *fakeCatalog) ListCategories(_ context.Context) ([]domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	return append([]domain.Category(nil), f.categories...), nil
}

func (f *fakeCatalog) ListReviews(_ context.Context, _ int) ([]domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Review(nil), f.reviews...), nil
}

func (f *fakeCatalog) AddReview(_ context.Context, _ int, _ int, comment string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviewAdds = append(f.reviewAdds, comment)
	return nil
}

func (f *fakeCatalog) CreateProduct(_ context.Context, form gateway.ProductForm) (domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, form)
	return domain.Product{ID: 99, Name: form.Name}, nil
}

func (f *fakeCatalog) UpdateProduct(_ context.Context, id int, form gateway.ProductForm) (domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, form)
	return domain.Product{ID: id, Name: form.Name}, nil
}

func (f *fakeCatalog) DeleteProduct(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeCatalog) CreateCategory(_ context.Context, name, _ string) (domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdCats = append(f.createdCats, name)
	return domain.Category{ID: 9, Name: name}, nil
}

func (f *fakeCatalog) UpdateCategory(_ context.Context, id int, name, _ string) (domain.Category, error) {
	return domain.Category{ID: id, Name: name}, nil
}

func (f *fakeCatalog) DeleteCategory(_ context.Context, _ int) error { return nil }

type fakeCart struct {
	mu   sync.Mutex
	cart domain.Cart

	getErr error

	getCalls   int
	removedIDs []int
	addedIDs   []int
	clearCalls int
}

func (f *fakeCart) Get(_ context.Context) (domain.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return domain.Cart{}, f.getErr
	}
	return f.cart, nil
}

func (f *fakeCart) AddItem(_ context.Context, productID, _ int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addedIDs = append(f.addedIDs, productID)
	return nil
}

func (f *fakeCart) RemoveItem(_ context.Context, productID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removedIDs = append(f.removedIDs, productID)
	items := f.cart.Items[:0:0]
	for _, it := range f.cart.Items {
		if it.Product.ID != productID {
			items = append(items, it)
		}
	}
	f.cart.Items = items
	return nil
}

func (f *fakeCart) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearCalls++
	f.cart.Items = nil
	return nil
}

type fakeOrders struct {
	mu     sync.Mutex
	orders []domain.Order

	createErr error

	listCalls      int
	cancelledIDs   []int
	statusUpdates  []string
	paymentUpdates []string
}

func (f *fakeOrders) List(_ context.Context) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return append([]domain.Order(nil), f.orders...), nil
}

func (f *fakeOrders) Get(_ context.Context, id int) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, errNotFound
}

func (f *fakeOrders) CreateFromCart(_ context.Context, shipping, billing string) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return domain.Order{}, f.createErr
	}
	return domain.Order{ID: 1, OrderNumber: "ORD-1", Status: domain.OrderPending,
		ShippingAddress: shipping, BillingAddress: billing}, nil
}

func (f *fakeOrders) Cancel(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelledIDs = append(f.cancelledIDs, id)
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = domain.OrderCancelled
		}
	}
	return nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id int, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusUpdates = append(f.statusUpdates, status)
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
		}
	}
	return nil
}

func (f *fakeOrders) UpdatePaymentStatus(_ context.Context, _ int, paymentStatus string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paymentUpdates = append(f.paymentUpdates, paymentStatus)
	return nil
}

type fakeAddresses struct {
	mu    sync.Mutex
	addrs []domain.Address

	listErr error

	createCalls int
	deletedIDs  []int
	nextID      int
}

func (f *fakeAddresses) List(_ context.Context) ([]domain.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Address(nil), f.addrs...), nil
}

func (f *fakeAddresses) Create(_ context.Context, form gateway.AddressForm) (domain.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	f.nextID++
	addr := domain.Address{
		ID:            f.nextID + 100,
		Label:         form.Label,
		StreetAddress: form.StreetAddress,
		City:          form.City,
		State:         form.State,
	}
	f.addrs = append(f.addrs, addr)
	return addr, nil
}

func (f *fakeAddresses) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedIDs = append(f.deletedIDs, id)
	addrs := f.addrs[:0:0]
	for _, a := range f.addrs {
		if a.ID != id {
			addrs = append(addrs, a)
		}
	}
	f.addrs = addrs
	return nil
}

type fakeUsers struct {
	mu    sync.Mutex
	users []domain.User

	setStaffErr error
	staffSets   []bool
}

func (f *fakeUsers) ListUsers(_ context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.User(nil), f.users...), nil
}

func (f *fakeUsers) SetStaff(_ context.Context, userID int, isStaff bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setStaffErr != nil {
		return f.setStaffErr
	}
	f.staffSets = append(f.staffSets, isStaff)
	for i := range f.users {
		if f.users[i].ID == userID {
			f.users[i].IsStaff = isStaff
		}
	}
	return nil
}

type fakeRecommend struct {
	mu  sync.Mutex
	set domain.RecommendationSet
	err error
}

func (f *fakeRecommend) ForProduct(_ context.Context, _, _ int) (domain.RecommendationSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set, f.err
}

func (f *fakeRecommend) ForUser(_ context.Context, _, _ int) (domain.RecommendationSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set, f.err
}

func (f *fakeRecommend) Popular(_ context.Context, _ int) (domain.RecommendationSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set, f.err
}

type fakeTracking struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeTracking) TrackView(_ context.Context, _ int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

type fakePayments struct {
	mu        sync.Mutex
	stats     domain.DashboardStats
	pending   domain.PendingOrdersPage
	detail    domain.AdminOrderDetail
	analytics domain.PaymentAnalytics

	pendingCalls   int
	lastPage       int
	lastPageSize   int
	lastStatus     string
	dashboardCalls int
}

func (f *fakePayments) DashboardStats(_ context.Context) (domain.DashboardStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dashboardCalls++
	return f.stats, nil
}

func (f *fakePayments) PendingOrders(_ context.Context, page, pageSize int, status string) (domain.PendingOrdersPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pendingCalls++
	f.lastPage = page
	f.lastPageSize = pageSize
	f.lastStatus = status
	return f.pending, nil
}

func (f *fakePayments) OrderDetails(_ context.Context, orderID int) (domain.AdminOrderDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	detail := f.detail
	detail.ID = orderID
	return detail, nil
}

func (f *fakePayments) Analytics(_ context.Context) (domain.PaymentAnalytics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.analytics, nil
}
