// Package ports defines repository interfaces for the store domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"store/internal/core/domain/model/invoice"
)

// InvoiceRepository defines the persistence contract for invoice aggregates.
// Provides methods for storing, retrieving, and deleting invoices with their
// complete line item state.
//
// Add and Update return the persisted aggregate: invoice and line item
// identifiers are assigned by the database, and callers need them to report
// results of cart and line item operations.
type InvoiceRepository interface {
	// Add persists a new invoice aggregate and returns it with its
	// database-assigned identifiers filled in.
	Add(ctx context.Context, aggregate *invoice.Invoice) (*invoice.Invoice, error)

	// Update persists changes to an existing invoice aggregate, including
	// added, changed and removed line items, and returns the stored state.
	Update(ctx context.Context, aggregate *invoice.Invoice) (*invoice.Invoice, error)

	// Get retrieves an invoice aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such invoice exists.
	Get(ctx context.Context, id int64) (*invoice.Invoice, error)

	// GetForUpdate retrieves an invoice like Get but takes a row lock for
	// the duration of the transaction. Mutating commands load through this
	// method so concurrent writers serialize on the invoice row.
	GetForUpdate(ctx context.Context, id int64) (*invoice.Invoice, error)

	// GetByLineItemForUpdate retrieves the locked invoice that owns the given
	// line item. Returns errs.ObjectNotFoundError when the line item does
	// not exist.
	GetByLineItemForUpdate(ctx context.Context, lineItemID int64) (*invoice.Invoice, error)

	// GetCartForUpdate retrieves the person's unpaid invoice, locked.
	// Returns errs.ObjectNotFoundError when the person has no cart.
	GetCartForUpdate(ctx context.Context, personID int64) (*invoice.Invoice, error)

	// Delete removes an invoice and all of its line items.
	// Returns errs.ObjectNotFoundError when no such invoice exists.
	Delete(ctx context.Context, id int64) error
}
