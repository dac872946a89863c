package queries

import (
	"errors"

	"store/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a person's current cart, the unpaid invoice they are
// shopping into. Reading never creates a cart; only adding a line item does.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	personID int64

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for a person's cart.
func NewGetCartQuery(personID int64) (GetCartQuery, error) {
	if personID <= 0 {
		return GetCartQuery{}, ErrPersonIDIsInvalid
	}

	return GetCartQuery{
		personID: personID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCartQueryIsNotConstructed if validation fails.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// PersonID returns the cart owner's identifier.
func (q GetCartQuery) PersonID() int64 {
	return q.personID
}
