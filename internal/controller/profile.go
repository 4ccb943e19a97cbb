package controller

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
	"github.com/Shalom-platinum/E-commerce/internal/gateway"
	"github.com/Shalom-platinum/E-commerce/internal/session"
)

// Profile drives the account screen: the user's editable profile
// fields and their saved addresses. Profile edits flow back into the
// session holder so every other screen sees the updated identity.
type Profile struct {
	view

	profiles  ProfileGateway
	addresses AddressGateway
	sess      *session.Holder
	log       zerolog.Logger

	addressBook []domain.Address
}

func NewProfile(profiles ProfileGateway, addresses AddressGateway, sess *session.Holder, log zerolog.Logger) *Profile {
	return &Profile{profiles: profiles, addresses: addresses, sess: sess, log: log}
}

// Load fetches the address book. The profile fields themselves come
// from the session's current user and need no fetch of their own.
func (p *Profile) Load(ctx context.Context) error {
	gen := p.begin()
	addrs, err := p.addresses.List(ctx)
	p.complete(gen, err, func() { p.addressBook = addrs })
	return err
}

// Save submits the edited profile fields and installs the returned
// canonical user into the session, so name and email shown elsewhere
// update without a re-login.
func (p *Profile) Save(ctx context.Context, form gateway.ProfileForm) error {
	if err := checkForm(form); err != nil {
		return err
	}
	user, err := p.profiles.UpdateProfile(ctx, form)
	if err != nil {
		return err
	}
	p.sess.SetUser(user)
	return nil
}

// AddAddress validates and saves a new address, then refetches the
// book so ordering and server-side defaults are authoritative.
func (p *Profile) AddAddress(ctx context.Context, form gateway.AddressForm) error {
	if err := checkForm(form); err != nil {
		return err
	}
	return mutateThenRefetch(ctx,
		func(ctx context.Context) error {
			_, err := p.addresses.Create(ctx, form)
			return err
		},
		p.refetchAddresses,
	)
}

// DeleteAddress removes an address and refetches the book.
func (p *Profile) DeleteAddress(ctx context.Context, addressID int) error {
	return mutateThenRefetch(ctx,
		func(ctx context.Context) error { return p.addresses.Delete(ctx, addressID) },
		p.refetchAddresses,
	)
}

func (p *Profile) refetchAddresses(ctx context.Context) error {
	addrs, err := p.addresses.List(ctx)
	if err != nil {
		return err
	}
	p.locked(func() { p.addressBook = addrs })
	return nil
}

// User returns the session's current user.
func (p *Profile) User() domain.User {
	return p.sess.CurrentUser()
}

// Addresses returns the loaded address book.
func (p *Profile) Addresses() []domain.Address {
	var out []domain.Address
	p.locked(func() { out = append(out, p.addressBook...) })
	return out
}
