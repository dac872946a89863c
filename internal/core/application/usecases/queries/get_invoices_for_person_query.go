package queries

import (
	"errors"

	"store/internal/pkg/guard"
)

var (
	ErrGetInvoicesForPersonQueryIsNotConstructed = errors.New(
		"GetInvoicesForPersonQuery must be created via NewGetInvoicesForPersonQuery constructor",
	)
	ErrPersonIDIsInvalid = errors.New("person id must be greater than 0")
)

// GetInvoicesForPersonQuery retrieves all of one person's invoices, including
// their current cart if any. An unknown person yields an empty list.
type GetInvoicesForPersonQuery struct { //nolint:recvcheck //using for validation
	personID int64

	guard guard.ConstructorGuard
}

// NewGetInvoicesForPersonQuery creates a query for a person's invoices.
func NewGetInvoicesForPersonQuery(personID int64) (GetInvoicesForPersonQuery, error) {
	if personID <= 0 {
		return GetInvoicesForPersonQuery{}, ErrPersonIDIsInvalid
	}

	return GetInvoicesForPersonQuery{
		personID: personID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInvoicesForPersonQueryIsNotConstructed if validation fails.
func (q GetInvoicesForPersonQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoicesForPersonQueryIsNotConstructed)
}

// PersonID returns the invoice owner's identifier.
func (q GetInvoicesForPersonQuery) PersonID() int64 {
	return q.personID
}
