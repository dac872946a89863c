package queries

import (
	"context"

	"store/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetInvoiceQueryHandler retrieves a single invoice with its line items.
type GetInvoiceQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoiceQueryHandler creates a handler for single-invoice queries.
// Requires a GORM database connection for query execution.
func NewGetInvoiceQueryHandler(db *gorm.DB) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{db: db}
}

// Handle executes the query and returns the invoice view.
// Returns errs.ObjectNotFoundError when no such invoice exists.
func (h GetInvoiceQueryHandler) Handle(ctx context.Context, query GetInvoiceQuery) (*InvoiceView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views, err := queryInvoiceViews(ctx, h.db,
		invoiceViewSelect+`WHERE i.id = ?`, query.InvoiceID())
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, errs.NewObjectNotFoundError("invoiceId", query.InvoiceID())
	}

	return &views[0], nil
}
