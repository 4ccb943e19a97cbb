package gateway

import (
	"context"
	"fmt"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
	"github.com/Shalom-platinum/E-commerce/internal/transport"
)

// Addresses covers the saved-address book.
type Addresses struct {
	client *transport.Client
}

// NewAddresses creates the address gateway.
func NewAddresses(client *transport.Client) *Addresses {
	return &Addresses{client: client}
}

// AddressForm is the address creation/update payload.
type AddressForm struct {
	Label         string `json:"label" validate:"required"`
	StreetAddress string `json:"street_address" validate:"required"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
}

// List fetches the current user's addresses.
func (g *Addresses) List(ctx context.Context) ([]domain.Address, error) {
	resp, err := g.client.Get(ctx, "/accounts/addresses/", nil)
	if err != nil {
		return nil, err
	}
	return DecodeList[domain.Address](resp)
}

// Create saves a new address and returns the canonical created record.
func (g *Addresses) Create(ctx context.Context, form AddressForm) (domain.Address, error) {
	resp, err := g.client.Post(ctx, "/accounts/addresses/", form)
	if err != nil {
		return domain.Address{}, err
	}
	return decodeOne[domain.Address](resp)
}

// Update replaces an address record.
func (g *Addresses) Update(ctx context.Context, id int, form AddressForm) (domain.Address, error) {
	resp, err := g.client.Put(ctx, fmt.Sprintf("/accounts/addresses/%d/", id), form)
	if err != nil {
		return domain.Address{}, err
	}
	return decodeOne[domain.Address](resp)
}

// Delete removes an address record.
func (g *Addresses) Delete(ctx context.Context, id int) error {
	resp, err := g.client.Delete(ctx, fmt.Sprintf("/accounts/addresses/%d/", id))
	if err != nil {
		return err
	}
	return discard(resp)
}
