package commands

import (
	"context"

	"store/internal/core/domain/model/invoice"
)

// UpdateInvoiceCommandHandler handles destination changes on invoices.
// Changing the country re-prices shipping and the total for the invoice's
// current weight.
type UpdateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewUpdateInvoiceCommandHandler creates a handler for invoice updates.
// Requires an InvoiceUoWFactory for transactional persistence.
func NewUpdateInvoiceCommandHandler(uowFactory InvoiceUoWFactory) UpdateInvoiceCommandHandler {
	return UpdateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the stored invoice with its
// recomputed shipping and total.
//
// Fails with errs.ObjectNotFoundError when the invoice does not exist, with
// invoice.ErrInvoiceLocked when it has shipped, and with
// kernel.ErrCountryNotAllowed for an unsupported country code.
func (h *UpdateInvoiceCommandHandler) Handle(ctx context.Context, cmd UpdateInvoiceCommand) (*invoice.Invoice, error) {
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

	if err = inv.SetDestination(cmd.CountryCode(), cmd.Address()); err != nil {
		return nil, err
	}

	stored, err := uow.InvoiceRepository().Update(ctx, inv)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
