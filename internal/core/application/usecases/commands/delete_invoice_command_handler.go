package commands

import (
	"context"

	"store/internal/core/domain/model/invoice"
)

// DeleteInvoiceCommandHandler handles invoice deletion. Line items go with
// the invoice; paid but unshipped invoices may still be deleted, shipped
// invoices may not.
type DeleteInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewDeleteInvoiceCommandHandler creates a handler for invoice deletion.
// Requires an InvoiceUoWFactory for transactional persistence.
func NewDeleteInvoiceCommandHandler(uowFactory InvoiceUoWFactory) DeleteInvoiceCommandHandler {
	return DeleteInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command and returns the deleted invoice's last
// state.
//
// Fails with errs.ObjectNotFoundError when the invoice does not exist and
// with invoice.ErrInvoiceLocked when it has shipped.
func (h *DeleteInvoiceCommandHandler) Handle(ctx context.Context, cmd DeleteInvoiceCommand) (*invoice.Invoice, error) {
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

	inv, err := uow.InvoiceRepository().GetForUpdate(ctx, cmd.InvoiceID())
	if err != nil {
		return nil, err
	}

	if err = inv.EnsureDeletable(); err != nil {
		return nil, err
	}

	if err = uow.InvoiceRepository().Delete(ctx, inv.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return inv, nil
}
