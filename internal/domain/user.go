package domain

import "time"

// User is the backend account record. IsStaff gates the admin screens.
type User struct {
	ID         int       `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name,omitempty"`
	LastName   string    `json:"last_name,omitempty"`
	IsStaff    bool      `json:"is_staff,omitempty"`
	IsActive   bool      `json:"is_active,omitempty"`
	DateJoined time.Time `json:"date_joined,omitempty"`
}

// FullName joins first and last name, falling back to the username when
// both are empty.
func (u User) FullName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return u.Username
	case u.LastName == "":
		return u.FirstName
	case u.FirstName == "":
		return u.LastName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Address is one saved address record. Which address is selected for
// shipping or billing is ephemeral UI state owned by the cart screen,
// never part of the record itself.
type Address struct {
	ID            int    `json:"id"`
	Label         string `json:"label"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code,omitempty"`
	Country       string `json:"country,omitempty"`
	IsDefault     bool   `json:"is_default,omitempty"`
}

// Flatten renders the address as the single-line form the order
// endpoints expect: "street, city, state".
func (a Address) Flatten() string {
	return a.StreetAddress + ", " + a.City + ", " + a.State
}
