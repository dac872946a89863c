package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetInvoicesForPersonQueryHandler retrieves one person's invoices from the
// database, sorted by invoice ID.
type GetInvoicesForPersonQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoicesForPersonQueryHandler creates a handler for per-person
// invoice queries. Requires a GORM database connection for query execution.
func NewGetInvoicesForPersonQueryHandler(db *gorm.DB) GetInvoicesForPersonQueryHandler {
	return GetInvoicesForPersonQueryHandler{db: db}
}

// Handle executes the query and returns the person's invoice views.
// Unknown persons yield an empty list, not an error.
func (h GetInvoicesForPersonQueryHandler) Handle(
	ctx context.Context,
	query GetInvoicesForPersonQuery,
) ([]InvoiceView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryInvoiceViews(ctx, h.db,
		invoiceViewSelect+`WHERE i.person_id = ? ORDER BY i.id`, query.PersonID())
}
