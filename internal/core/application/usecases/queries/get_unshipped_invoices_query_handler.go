package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUnshippedInvoicesQueryHandler retrieves paid but unshipped invoices,
// oldest payment first so the shipping desk works in arrival order.
type GetUnshippedInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewGetUnshippedInvoicesQueryHandler creates a handler for shipping queue
// queries. Requires a GORM database connection for query execution.
func NewGetUnshippedInvoicesQueryHandler(db *gorm.DB) GetUnshippedInvoicesQueryHandler {
	return GetUnshippedInvoicesQueryHandler{db: db}
}

// Handle executes the query and returns the invoices awaiting shipment.
func (h GetUnshippedInvoicesQueryHandler) Handle(
	ctx context.Context,
	query GetUnshippedInvoicesQuery,
) ([]InvoiceView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryInvoiceViews(ctx, h.db,
		invoiceViewSelect+`WHERE i.payment_date IS NOT NULL AND i.ship_date IS NULL ORDER BY i.payment_date, i.id`)
}
