package queries

import (
	"context"

	"store/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves a person's unpaid invoice with its line items.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query and returns the cart's invoice view.
// Returns errs.ObjectNotFoundError when the person has no cart.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (*InvoiceView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views, err := queryInvoiceViews(ctx, h.db,
		invoiceViewSelect+`WHERE i.person_id = ? AND i.payment_date IS NULL`, query.PersonID())
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, errs.NewObjectNotFoundError("personId", query.PersonID())
	}

	return &views[0], nil
}
