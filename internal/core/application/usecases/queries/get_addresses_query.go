package queries

import (
	"errors"

	"store/internal/pkg/guard"
)

var ErrGetAddressesQueryIsNotConstructed = errors.New(
	"GetAddressesQuery must be created via NewGetAddressesQuery constructor",
)

// GetAddressesQuery retrieves all addresses on file for a person.
type GetAddressesQuery struct { //nolint:recvcheck //using for validation
	personID int64

	guard guard.ConstructorGuard
}

// NewGetAddressesQuery creates a query for a person's addresses.
func NewGetAddressesQuery(personID int64) (GetAddressesQuery, error) {
	if personID <= 0 {
		return GetAddressesQuery{}, ErrPersonIDIsInvalid
	}

	return GetAddressesQuery{
		personID: personID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAddressesQueryIsNotConstructed if validation fails.
func (q GetAddressesQuery) Validate() error {
	return q.guard.Validate(ErrGetAddressesQueryIsNotConstructed)
}

// PersonID returns the address owner's identifier.
func (q GetAddressesQuery) PersonID() int64 {
	return q.personID
}
