package commands

import (
	"context"
	"errors"

	"store/internal/core/domain/model/invoice"
	"store/internal/pkg/errs"
)

// DeleteLineItemCommandHandler handles line item removal. Removal is
// idempotent: deleting a line item that does not exist succeeds silently,
// while deleting from a paid invoice is rejected.
type DeleteLineItemCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewDeleteLineItemCommandHandler creates a handler for line item deletion.
// Requires an InvoiceUoWFactory for transactional persistence.
func NewDeleteLineItemCommandHandler(uowFactory InvoiceUoWFactory) DeleteLineItemCommandHandler {
	return DeleteLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command, recomputing the owning invoice's
// totals. Returns the removed line item as it stood before deletion, or nil
// without error when no such line item exists.
//
// Fails with invoice.ErrLineItemLocked when the invoice is paid.
func (h *DeleteLineItemCommandHandler) Handle(ctx context.Context, cmd DeleteLineItemCommand) (*invoice.LineItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inv, err := uow.InvoiceRepository().GetByLineItemForUpdate(ctx, cmd.LineItemID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}

	removed, err := inv.RemoveLineItem(cmd.LineItemID())
	if err != nil {
		return nil, err
	}

	if _, err = uow.InvoiceRepository().Update(ctx, inv); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return removed, nil
}
