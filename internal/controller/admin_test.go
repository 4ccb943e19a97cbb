package controller

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
	"github.com/Shalom-platinum/E-commerce/internal/gateway"
)

func TestAdminProductCreateRequiresFields(t *testing.T) {
	fc := &fakeCatalog{}
	a := NewAdminProducts(fc, zerolog.Nop())

	cases := []gateway.ProductForm{
		{Price: "10", CategoryID: "1", SKU: "SK-1", Image: strings.NewReader("img")},
		{Name: "Shirt", CategoryID: "1", SKU: "SK-1", Image: strings.NewReader("img")},
		{Name: "Shirt", Price: "10", SKU: "SK-1", Image: strings.NewReader("img")},
		{Name: "Shirt", Price: "10", CategoryID: "1", Image: strings.NewReader("img")},
		{Name: "Shirt", Price: "10", CategoryID: "1", SKU: "SK-1"}, // image missing
	}
	for _, form := range cases {
		err := a.Create(context.Background(), form)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	}
	assert.Empty(t, fc.created)
}

func TestAdminProductUpdateKeepsStoredImage(t *testing.T) {
	fc := &fakeCatalog{products: []domain.Product{{ID: 1, Name: "Shirt"}}}
	a := NewAdminProducts(fc, zerolog.Nop())

	err := a.Update(context.Background(), 1, gateway.ProductForm{
		Name: "Shirt v2", Price: "12", CategoryID: "1", SKU: "SK-1",
	})
	require.NoError(t, err)
	require.Len(t, fc.updated, 1)
	assert.Nil(t, fc.updated[0].Image)
}

func TestAdminProductCreateRefetchesTable(t *testing.T) {
	fc := &fakeCatalog{products: []domain.Product{{ID: 1, Name: "Shirt"}}}
	a := NewAdminProducts(fc, zerolog.Nop())
	require.NoError(t, a.Load(context.Background()))
	before := fc.listCalls

	err := a.Create(context.Background(), gateway.ProductForm{
		Name: "Hat", Price: "8", CategoryID: "1", SKU: "SK-2", Image: strings.NewReader("img"),
	})
	require.NoError(t, err)
	assert.Len(t, fc.created, 1)
	assert.Equal(t, before+1, fc.listCalls)
}

func TestAdminCategoryCreateRequiresName(t *testing.T) {
	fc := &fakeCatalog{}
	a := NewAdminCategories(fc, zerolog.Nop())

	err := a.Create(context.Background(), "   ", "")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Empty(t, fc.createdCats)

	require.NoError(t, a.Create(context.Background(), "Shoes", ""))
	assert.Equal(t, []string{"Shoes"}, fc.createdCats)
}

func TestAdminOrdersStatusFilterIsLocal(t *testing.T) {
	fo := &fakeOrders{orders: []domain.Order{
		{ID: 1, Status: domain.OrderPending},
		{ID: 2, Status: domain.OrderShipped},
		{ID: 3, Status: domain.OrderPending},
	}}
	a := NewAdminOrders(fo, zerolog.Nop())
	require.NoError(t, a.Load(context.Background()))
	before := fo.listCalls

	a.SetStatusFilter(domain.OrderPending)
	assert.Len(t, a.Orders(), 2)
	a.SetStatusFilter("")
	assert.Len(t, a.Orders(), 3)
	assert.Equal(t, before, fo.listCalls)
}

func TestAdminOrdersRejectsUnknownStatus(t *testing.T) {
	fo := &fakeOrders{orders: []domain.Order{{ID: 1, Status: domain.OrderPending}}}
	a := NewAdminOrders(fo, zerolog.Nop())
	require.NoError(t, a.Load(context.Background()))

	err := a.UpdateStatus(context.Background(), 1, "teleported")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Empty(t, fo.statusUpdates)
}

func TestAdminOrdersUpdateStatusRefetchesAndDropsSelection(t *testing.T) {
	fo := &fakeOrders{orders: []domain.Order{{ID: 1, Status: domain.OrderPending}}}
	a := NewAdminOrders(fo, zerolog.Nop())
	require.NoError(t, a.Load(context.Background()))
	a.Select(1)
	require.NotNil(t, a.Selected())

	require.NoError(t, a.UpdateStatus(context.Background(), 1, domain.OrderShipped))

	assert.Equal(t, []string{domain.OrderShipped}, fo.statusUpdates)
	list := a.Orders()
	require.Len(t, list, 1)
	assert.Equal(t, domain.OrderShipped, list[0].Status)
	assert.Nil(t, a.Selected())
}

func TestAdminUsersSearchFilter(t *testing.T) {
	fu := &fakeUsers{users: []domain.User{
		{ID: 1, Username: "alice", Email: "alice@shop.test"},
		{ID: 2, Username: "bob", Email: "bob@shop.test"},
	}}
	a := NewAdminUsers(fu, zerolog.Nop())
	require.NoError(t, a.Load(context.Background()))

	a.SetSearch("ALI")
	got := a.Users()
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].Username)

	a.SetSearch("shop.test")
	assert.Len(t, a.Users(), 2)

	a.SetSearch("")
	assert.Len(t, a.Users(), 2)
}

func TestToggleStaffPatchesSelectionThenRefetches(t *testing.T) {
	fu := &fakeUsers{users: []domain.User{{ID: 1, Username: "alice"}}}
	a := NewAdminUsers(fu, zerolog.Nop())
	require.NoError(t, a.Load(context.Background()))
	a.Select(1)

	require.NoError(t, a.ToggleStaff(context.Background(), 1, true))

	assert.Equal(t, []bool{true}, fu.staffSets)
	sel := a.Selected()
	require.NotNil(t, sel)
	assert.True(t, sel.IsStaff)
	got := a.Users()
	require.Len(t, got, 1)
	assert.True(t, got[0].IsStaff)
}

func TestToggleStaffFailureTouchesNothing(t *testing.T) {
	fu := &fakeUsers{
		users:       []domain.User{{ID: 1, Username: "alice"}},
		setStaffErr: errNotFound,
	}
	a := NewAdminUsers(fu, zerolog.Nop())
	require.NoError(t, a.Load(context.Background()))
	a.Select(1)

	require.Error(t, a.ToggleStaff(context.Background(), 1, true))

	sel := a.Selected()
	require.NotNil(t, sel)
	assert.False(t, sel.IsStaff)
}

func TestAdminPaymentsTabsLoadTheirOwnData(t *testing.T) {
	fp := &fakePayments{
		stats:   domain.DashboardStats{TotalRevenue: 120.50},
		pending: domain.PendingOrdersPage{Count: 1, Results: []domain.PendingOrder{{ID: 7}}},
	}
	a := NewAdminPayments(fp, &fakeOrders{}, zerolog.Nop())

	require.NoError(t, a.Load(context.Background()))
	assert.Equal(t, TabDashboard, a.Tab())
	assert.InDelta(t, 120.50, float64(a.Stats().TotalRevenue), 0.001)

	require.NoError(t, a.SwitchTab(context.Background(), TabPending))
	assert.Equal(t, 1, a.Pending().Count)
	assert.Equal(t, 1, fp.lastPage)
	assert.Equal(t, defaultPendingPageSize, fp.lastPageSize)
}

func TestAdminPaymentsStatusFilterResetsPage(t *testing.T) {
	fp := &fakePayments{}
	a := NewAdminPayments(fp, &fakeOrders{}, zerolog.Nop())
	require.NoError(t, a.SwitchTab(context.Background(), TabPending))
	require.NoError(t, a.SetPage(context.Background(), 3))
	assert.Equal(t, 3, fp.lastPage)

	require.NoError(t, a.SetStatusFilter(context.Background(), domain.PaymentPending))
	assert.Equal(t, 1, fp.lastPage)
	assert.Equal(t, domain.PaymentPending, fp.lastStatus)
}

func TestMarkPaymentAcceptsOnlyTerminalOutcomes(t *testing.T) {
	fo := &fakeOrders{}
	a := NewAdminPayments(&fakePayments{}, fo, zerolog.Nop())

	err := a.MarkPayment(context.Background(), 7, "maybe")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Empty(t, fo.paymentUpdates)
}

func TestMarkPaymentClosesDetailAndReloads(t *testing.T) {
	fp := &fakePayments{}
	fo := &fakeOrders{}
	a := NewAdminPayments(fp, fo, zerolog.Nop())
	require.NoError(t, a.SwitchTab(context.Background(), TabPending))
	require.NoError(t, a.OpenOrder(context.Background(), 7))
	require.NotNil(t, a.Detail())
	before := fp.pendingCalls

	require.NoError(t, a.MarkPayment(context.Background(), 7, domain.PaymentPaid))

	assert.Equal(t, []string{domain.PaymentPaid}, fo.paymentUpdates)
	assert.Nil(t, a.Detail())
	assert.Equal(t, before+1, fp.pendingCalls)
}
