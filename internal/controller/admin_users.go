package controller

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
)

// AdminUsers drives the staff user-management screen: the full user
// roster, a local search filter, and the staff-role toggle.
type AdminUsers struct {
	view

	users UserAdminGateway
	log   zerolog.Logger

	list     []domain.User
	search   string
	selected *domain.User
}

func NewAdminUsers(users UserAdminGateway, log zerolog.Logger) *AdminUsers {
	return &AdminUsers{users: users, log: log}
}

// Load fetches the full user list.
func (a *AdminUsers) Load(ctx context.Context) error {
	gen := a.begin()
	list, err := a.users.ListUsers(ctx)
	a.complete(gen, err, func() {
		a.list = list
		a.selected = nil
	})
	return err
}

// SetSearch narrows the visible users to those whose username or email
// contains the term, case-insensitively. Filtering is local only.
func (a *AdminUsers) SetSearch(term string) {
	a.locked(func() { a.search = strings.ToLower(strings.TrimSpace(term)) })
}

// Select marks a user for detail display, from the loaded list.
func (a *AdminUsers) Select(userID int) {
	a.locked(func() {
		a.selected = nil
		for i := range a.list {
			if a.list[i].ID == userID {
				cp := a.list[i]
				a.selected = &cp
				return
			}
		}
	})
}

// ToggleStaff flips a user's staff flag. On gateway success the
// selected user's flag is patched locally first, so the detail panel
// reflects the change even before the refetched list lands, then the
// roster is refetched.
func (a *AdminUsers) ToggleStaff(ctx context.Context, userID int, isStaff bool) error {
	return mutateThenRefetch(ctx,
		func(ctx context.Context) error {
			if err := a.users.SetStaff(ctx, userID, isStaff); err != nil {
				return err
			}
			a.locked(func() {
				if a.selected != nil && a.selected.ID == userID {
					a.selected.IsStaff = isStaff
				}
			})
			return nil
		},
		a.refetchUsers,
	)
}

func (a *AdminUsers) refetchUsers(ctx context.Context) error {
	list, err := a.users.ListUsers(ctx)
	if err != nil {
		return err
	}
	a.locked(func() { a.list = list })
	return nil
}

// Users returns the loaded users with the search filter applied.
func (a *AdminUsers) Users() []domain.User {
	var out []domain.User
	a.locked(func() {
		for _, u := range a.list {
			if a.search == "" ||
				strings.Contains(strings.ToLower(u.Username), a.search) ||
				strings.Contains(strings.ToLower(u.Email), a.search) {
				out = append(out, u)
			}
		}
	})
	return out
}

// Selected returns the user picked for detail display, or nil.
func (a *AdminUsers) Selected() *domain.User {
	var sel *domain.User
	a.locked(func() {
		if a.selected != nil {
			cp := *a.selected
			sel = &cp
		}
	})
	return sel
}
