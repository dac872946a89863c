package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetInvoicesQueryHandler retrieves all invoices from the database.
// Results are sorted by invoice ID for consistent output.
type GetInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoicesQueryHandler creates a handler for invoice list queries.
// Requires a GORM database connection for query execution.
func NewGetInvoicesQueryHandler(db *gorm.DB) GetInvoicesQueryHandler {
	return GetInvoicesQueryHandler{db: db}
}

// Handle executes the query and returns all invoice views.
func (h GetInvoicesQueryHandler) Handle(ctx context.Context, query GetInvoicesQuery) ([]InvoiceView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryInvoiceViews(ctx, h.db, invoiceViewSelect+`ORDER BY i.id`)
}
