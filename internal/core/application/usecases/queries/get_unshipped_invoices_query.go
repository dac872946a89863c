package queries

import (
	"errors"

	"store/internal/pkg/guard"
)

var ErrGetUnshippedInvoicesQueryIsNotConstructed = errors.New(
	"GetUnshippedInvoicesQuery must be created via NewGetUnshippedInvoicesQuery constructor",
)

// GetUnshippedInvoicesQuery retrieves the shipping desk's work queue: paid
// invoices whose shipment has not been recorded yet. Carts are excluded.
//
// Example:
//
//	query := NewGetUnshippedInvoicesQuery()
//	handler := NewGetUnshippedInvoicesQueryHandler(db)
//
//	invoices, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get shipping queue: %w", err)
//	}
//	fmt.Printf("%d invoices awaiting shipment\n", len(invoices))
type GetUnshippedInvoicesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnshippedInvoicesQuery creates a query to retrieve paid, unshipped
// invoices. This is a parameterless query.
func NewGetUnshippedInvoicesQuery() GetUnshippedInvoicesQuery {
	return GetUnshippedInvoicesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnshippedInvoicesQueryIsNotConstructed if validation fails.
func (q GetUnshippedInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetUnshippedInvoicesQueryIsNotConstructed)
}
