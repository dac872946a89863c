// Package person holds the read-only person and address entities.
// Person management lives outside the order engine; persons appear here as
// foreign-key targets and as the source of cart destination defaults.
package person

import (
	"errors"

	"store/internal/core/domain/model/kernel"
	"store/internal/pkg/errs"
)

var (
	// ErrPersonIsNotConstructed is returned when a Person was not created via RestorePerson.
	ErrPersonIsNotConstructed = errors.New("Person must be created via RestorePerson constructor")

	// ErrAddressIsNotConstructed is returned when an Address was not created via RestoreAddress.
	ErrAddressIsNotConstructed = errors.New("Address must be created via RestoreAddress constructor")
)

// Person is a customer of the store.
type Person struct {
	id   int64
	name string

	isConstructed bool
}

// RestorePerson reconstructs a person from persistent storage.
func RestorePerson(id int64, name string) (*Person, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("person id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Person{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the Person was properly constructed through RestorePerson.
func (p *Person) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPersonIsNotConstructed
	}
	return nil
}

// ID returns the person's unique identifier.
func (p *Person) ID() int64 {
	return p.id
}

// Name returns the person's display name.
func (p *Person) Name() string {
	return p.name
}

// Address is one stored shipping address of a person. A person may have zero
// or more addresses; the first one acts as the default destination when a new
// cart is created. Invoices copy the address as a text snapshot rather than
// referencing it, so later address edits never change existing orders.
type Address struct {
	id       int64
	personID int64
	country  kernel.Country
	address  string

	isConstructed bool
}

// RestoreAddress reconstructs an address from persistent storage.
func RestoreAddress(id, personID int64, country kernel.Country, address string) (*Address, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("address id")
	}
	if personID <= 0 {
		return nil, errs.NewValueIsInvalidError("person id")
	}
	if err := country.Validate(); err != nil {
		return nil, err
	}

	return &Address{
		id:            id,
		personID:      personID,
		country:       country,
		address:       address,
		isConstructed: true,
	}, nil
}

// Validate ensures the Address was properly constructed through RestoreAddress.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// ID returns the address's unique identifier.
func (a *Address) ID() int64 {
	return a.id
}

// PersonID returns the owning person's identifier.
func (a *Address) PersonID() int64 {
	return a.personID
}

// Country returns the destination country of the address.
func (a *Address) Country() kernel.Country {
	return a.country
}

// Text returns the free-form address text.
func (a *Address) Text() string {
	return a.address
}
