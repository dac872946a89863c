package commands

import (
	"context"
	"errors"

	"store/internal/core/domain/model/invoice"
	"store/internal/pkg/errs"
)

// UpdateLineItemCommandHandler handles quantity changes on line items.
// The unit price is re-read from the line item's catalog snapshot and the
// invoice totals are recomputed inside the same transaction.
type UpdateLineItemCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewUpdateLineItemCommandHandler creates a handler for line item updates.
// Requires an InvoiceUoWFactory for transactional persistence.
func NewUpdateLineItemCommandHandler(uowFactory InvoiceUoWFactory) UpdateLineItemCommandHandler {
	return UpdateLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the updated line item.
// Returns nil without error when the line item does not exist, and also
// after a zero-quantity update removed it.
//
// Fails with invoice.ErrLineItemLocked when the owning invoice is paid.
func (h *UpdateLineItemCommandHandler) Handle(ctx context.Context, cmd UpdateLineItemCommand) (*invoice.LineItem, error) {
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

	li, removed, err := inv.UpdateLineItem(cmd.LineItemID(), cmd.Quantity())
	if err != nil {
		return nil, err
	}

	stored, err := uow.InvoiceRepository().Update(ctx, inv)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if removed {
		return nil, nil
	}
	return lineItemForItem(stored, li.ItemID()), nil
}
