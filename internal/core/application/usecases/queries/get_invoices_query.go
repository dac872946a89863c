package queries

import (
	"errors"

	"store/internal/pkg/guard"
)

var ErrGetInvoicesQueryIsNotConstructed = errors.New(
	"GetInvoicesQuery must be created via NewGetInvoicesQuery constructor",
)

// GetInvoicesQuery retrieves every invoice in the system with line items,
// regardless of owner or status.
type GetInvoicesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInvoicesQuery creates a query to retrieve all invoices.
func NewGetInvoicesQuery() GetInvoicesQuery {
	return GetInvoicesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInvoicesQueryIsNotConstructed if validation fails.
func (q GetInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoicesQueryIsNotConstructed)
}
