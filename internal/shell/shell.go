// Package shell is the top-level composition layer: which view is
// active, and the cross-cutting display state the nav bar needs. The
// shell holds no resource state of its own and has no error-handling
// role; controllers keep their failures to themselves.
package shell

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Shalom-platinum/E-commerce/internal/session"
)

// View names one screen of the application.
type View string

const (
	ViewCatalog       View = "catalog"
	ViewProductDetail View = "product_detail"
	ViewLogin         View = "login"
	ViewRegister      View = "register"
	ViewCart          View = "cart"
	ViewOrders        View = "orders"
	ViewProfile       View = "profile"

	ViewAdminProducts   View = "admin_products"
	ViewAdminCategories View = "admin_categories"
	ViewAdminOrders     View = "admin_orders"
	ViewAdminUsers      View = "admin_users"
	ViewAdminPayments   View = "admin_payments"
)

var (
	// ErrLoginRequired is returned when an unauthenticated session tries
	// to open an account-scoped view.
	ErrLoginRequired = errors.New("login required")
	// ErrStaffOnly is returned when a non-staff session tries to open an
	// admin view.
	ErrStaffOnly = errors.New("staff only")
)

// Shell selects the active view and exposes the nav badge. The badge
// count has exactly one writer, the cart controller, which receives the
// setter at construction; everything else only reads it.
type Shell struct {
	sess *session.Holder
	log  zerolog.Logger

	mu     sync.Mutex
	active View
	badge  int
}

// New creates a shell showing the catalog.
func New(sess *session.Holder, log zerolog.Logger) *Shell {
	return &Shell{sess: sess, log: log, active: ViewCatalog}
}

// Navigate switches the active view after checking access: account
// views need an authenticated session, admin views a staff one. A
// denied navigation leaves the active view unchanged.
func (s *Shell) Navigate(view View) error {
	if err := s.authorize(view); err != nil {
		return err
	}
	s.mu.Lock()
	s.active = view
	s.mu.Unlock()
	s.log.Debug().Str("view", string(view)).Msg("navigate")
	return nil
}

func (s *Shell) authorize(view View) error {
	switch view {
	case ViewCart, ViewOrders, ViewProfile:
		if !s.sess.IsAuthenticated() {
			return ErrLoginRequired
		}
	case ViewAdminProducts, ViewAdminCategories, ViewAdminOrders, ViewAdminUsers, ViewAdminPayments:
		if !s.sess.IsStaff() {
			return ErrStaffOnly
		}
	}
	return nil
}

// Active returns the current view.
func (s *Shell) Active() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// BadgeSetter returns the write side of the nav badge. It is handed to
// the cart controller once at wiring time.
func (s *Shell) BadgeSetter() func(int) {
	return func(n int) {
		s.mu.Lock()
		s.badge = n
		s.mu.Unlock()
	}
}

// Badge returns the cart item count shown in the nav bar.
func (s *Shell) Badge() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.badge
}
