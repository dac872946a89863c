package queries

import (
	"errors"

	"store/internal/pkg/guard"
)

var (
	ErrGetInvoiceQueryIsNotConstructed = errors.New(
		"GetInvoiceQuery must be created via NewGetInvoiceQuery constructor",
	)
	ErrInvoiceIDIsInvalid = errors.New("invoice id must be greater than 0")
)

// GetInvoiceQuery retrieves a single invoice by its identifier.
type GetInvoiceQuery struct { //nolint:recvcheck //using for validation
	invoiceID int64

	guard guard.ConstructorGuard
}

// NewGetInvoiceQuery creates a query for one invoice.
func NewGetInvoiceQuery(invoiceID int64) (GetInvoiceQuery, error) {
	if invoiceID <= 0 {
		return GetInvoiceQuery{}, ErrInvoiceIDIsInvalid
	}

	return GetInvoiceQuery{
		invoiceID: invoiceID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInvoiceQueryIsNotConstructed if validation fails.
func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}

// InvoiceID returns the requested invoice's identifier.
func (q GetInvoiceQuery) InvoiceID() int64 {
	return q.invoiceID
}
