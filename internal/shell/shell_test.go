package shell

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shalom-platinum/E-commerce/internal/credential"
	"github.com/Shalom-platinum/E-commerce/internal/domain"
	"github.com/Shalom-platinum/E-commerce/internal/gateway"
	"github.com/Shalom-platinum/E-commerce/internal/session"
)

type stubAccounts struct {
	user domain.User
}

func (s *stubAccounts) Me(context.Context) (domain.User, error) { return s.user, nil }
func (s *stubAccounts) Login(context.Context, string, string) (gateway.AuthResponse, error) {
	return gateway.AuthResponse{Token: "tok", User: s.user}, nil
}
func (s *stubAccounts) Register(context.Context, gateway.RegisterForm) (gateway.AuthResponse, error) {
	return gateway.AuthResponse{Token: "tok", User: s.user}, nil
}
func (s *stubAccounts) Logout(context.Context) error { return nil }

func newSession(t *testing.T, user *domain.User) *session.Holder {
	t.Helper()
	accounts := &stubAccounts{}
	if user != nil {
		accounts.user = *user
	}
	sess := session.NewHolder(accounts, credential.NewMemoryStore(), zerolog.Nop())
	if user != nil {
		_, err := sess.Login(context.Background(), user.Username, "pw")
		require.NoError(t, err)
	}
	return sess
}

func TestGuestNavigation(t *testing.T) {
	s := New(newSession(t, nil), zerolog.Nop())
	assert.Equal(t, ViewCatalog, s.Active())

	require.NoError(t, s.Navigate(ViewProductDetail))
	require.NoError(t, s.Navigate(ViewLogin))

	err := s.Navigate(ViewCart)
	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.Equal(t, ViewLogin, s.Active())

	err = s.Navigate(ViewAdminProducts)
	assert.ErrorIs(t, err, ErrStaffOnly)
}

func TestCustomerCannotOpenAdminViews(t *testing.T) {
	s := New(newSession(t, &domain.User{ID: 1, Username: "alice"}), zerolog.Nop())

	require.NoError(t, s.Navigate(ViewCart))
	require.NoError(t, s.Navigate(ViewOrders))
	require.NoError(t, s.Navigate(ViewProfile))

	err := s.Navigate(ViewAdminPayments)
	assert.ErrorIs(t, err, ErrStaffOnly)
	assert.Equal(t, ViewProfile, s.Active())
}

func TestStaffOpensAdminViews(t *testing.T) {
	s := New(newSession(t, &domain.User{ID: 2, Username: "root", IsStaff: true}), zerolog.Nop())

	for _, v := range []View{ViewAdminProducts, ViewAdminCategories, ViewAdminOrders, ViewAdminUsers, ViewAdminPayments} {
		require.NoError(t, s.Navigate(v))
		assert.Equal(t, v, s.Active())
	}
}

func TestBadgeSingleWriter(t *testing.T) {
	s := New(newSession(t, nil), zerolog.Nop())
	assert.Equal(t, 0, s.Badge())

	set := s.BadgeSetter()
	set(3)
	assert.Equal(t, 3, s.Badge())
	set(0)
	assert.Equal(t, 0, s.Badge())
}
