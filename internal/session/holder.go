// Package session owns process-wide authentication state: the current
// user, the presence of a credential, and the explicit init/teardown
// lifecycle around both.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Shalom-platinum/E-commerce/internal/credential"
	"github.com/Shalom-platinum/E-commerce/internal/domain"
	"github.com/Shalom-platinum/E-commerce/internal/gateway"
)

// State is the session lifecycle state.
type State int

const (
	// Unauthenticated means no accepted credential is held.
	Unauthenticated State = iota
	// Validating means a stored credential is being checked against the
	// backend during startup.
	Validating
	// Authenticated means the backend accepted the held credential.
	Authenticated
)

// String names the state for logs.
func (s State) String() string {
	switch s {
	case Validating:
		return "validating"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// ErrPasswordMismatch is returned when a registration's password and
// confirmation differ. No network call is made in that case.
var ErrPasswordMismatch = errors.New("passwords do not match")

// AccountsGateway is the slice of the accounts API the holder needs.
type AccountsGateway interface {
	Me(ctx context.Context) (domain.User, error)
	Login(ctx context.Context, username, password string) (gateway.AuthResponse, error)
	Register(ctx context.Context, form gateway.RegisterForm) (gateway.AuthResponse, error)
	Logout(ctx context.Context) error
}

// Holder is the single owner of authentication state. An accepted
// credential is always persisted before the holder reports
// Authenticated.
type Holder struct {
	accounts AccountsGateway
	store    credential.Store
	log      zerolog.Logger

	mu    sync.RWMutex
	state State
	user  *domain.User
}

// NewHolder creates an unauthenticated holder.
func NewHolder(accounts AccountsGateway, store credential.Store, log zerolog.Logger) *Holder {
	return &Holder{accounts: accounts, store: store, log: log}
}

// Init validates any stored credential against the backend. A rejected
// or unreachable credential clears storage and settles the holder to
// Unauthenticated; this is the only automatic credential-eviction path.
// Init never fails the process: startup always settles to some state.
func (h *Holder) Init(ctx context.Context) {
	token := h.store.Token()
	if token == "" {
		h.setState(Unauthenticated, nil)
		return
	}

	h.setState(Validating, nil)
	user, err := h.accounts.Me(ctx)
	if err != nil {
		h.log.Warn().Err(err).Msg("stored credential rejected, clearing")
		if clearErr := h.store.Clear(); clearErr != nil {
			h.log.Warn().Err(clearErr).Msg("clear credential")
		}
		h.setState(Unauthenticated, nil)
		return
	}
	h.setState(Authenticated, &user)
}

// Login exchanges credentials for a token, persists it, and settles to
// Authenticated.
func (h *Holder) Login(ctx context.Context, username, password string) (domain.User, error) {
	resp, err := h.accounts.Login(ctx, username, password)
	if err != nil {
		return domain.User{}, err
	}
	return h.accept(ctx, resp)
}

// Register creates an account and logs straight into it. The password
// confirmation is checked locally first; a mismatch issues no network
// call.
func (h *Holder) Register(ctx context.Context, form gateway.RegisterForm) (domain.User, error) {
	if form.Password != form.PasswordConfirm {
		return domain.User{}, ErrPasswordMismatch
	}
	resp, err := h.accounts.Register(ctx, form)
	if err != nil {
		return domain.User{}, err
	}
	return h.accept(ctx, resp)
}

func (h *Holder) accept(ctx context.Context, resp gateway.AuthResponse) (domain.User, error) {
	if err := h.store.SetToken(resp.Token); err != nil {
		return domain.User{}, err
	}
	user := resp.User
	if user.ID == 0 {
		// Some deployments return only the token; fetch the profile.
		fetched, err := h.accounts.Me(ctx)
		if err != nil {
			return domain.User{}, err
		}
		user = fetched
	}
	h.setState(Authenticated, &user)
	h.log.Info().Str("username", user.Username).Msg("session authenticated")
	return user, nil
}

// Logout tears the session down. It always succeeds locally: the
// backend call is best-effort, and storage plus state are reset
// regardless of reachability.
func (h *Holder) Logout(ctx context.Context) {
	if err := h.accounts.Logout(ctx); err != nil {
		h.log.Warn().Err(err).Msg("backend logout failed, clearing locally anyway")
	}
	if err := h.store.Clear(); err != nil {
		h.log.Warn().Err(err).Msg("clear credential")
	}
	h.setState(Unauthenticated, nil)
}

// Invalidate clears the session after the backend rejected the
// credential mid-flight (401/403 on a normal call).
func (h *Holder) Invalidate() {
	if err := h.store.Clear(); err != nil {
		h.log.Warn().Err(err).Msg("clear credential")
	}
	h.setState(Unauthenticated, nil)
}

// SetUser replaces the cached user record, e.g. after a profile update.
// It has no effect while unauthenticated.
func (h *Holder) SetUser(user domain.User) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state == Authenticated {
		h.user = &user
	}
}

// State returns the lifecycle state.
func (h *Holder) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// User returns the current user, or false while unauthenticated.
func (h *Holder) User() (domain.User, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.user == nil {
		return domain.User{}, false
	}
	return *h.user, true
}

// CurrentUser returns the current user, or the zero user while
// unauthenticated. Callers that need to distinguish use User.
func (h *Holder) CurrentUser() domain.User {
	user, _ := h.User()
	return user
}

// IsAuthenticated reports whether a backend-accepted credential is held.
func (h *Holder) IsAuthenticated() bool {
	return h.State() == Authenticated
}

// IsStaff reports whether the current user may see the admin screens.
func (h *Holder) IsStaff() bool {
	user, ok := h.User()
	return ok && user.IsStaff
}

func (h *Holder) setState(state State, user *domain.User) {
	h.mu.Lock()
	h.state = state
	h.user = user
	h.mu.Unlock()
}
