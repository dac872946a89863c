package commands

import (
	"context"
	"time"

	"store/internal/core/domain/model/invoice"
)

// MarkInvoiceShippedCommandHandler handles shipment recording. The ship date
// is taken at handling time; a shipped invoice can never be changed again.
type MarkInvoiceShippedCommandHandler struct {
	uowFactory InvoiceUoWFactory
	now        func() time.Time
}

// NewMarkInvoiceShippedCommandHandler creates a handler for shipment recording.
// Requires an InvoiceUoWFactory for transactional persistence.
func NewMarkInvoiceShippedCommandHandler(uowFactory InvoiceUoWFactory) MarkInvoiceShippedCommandHandler {
	return MarkInvoiceShippedCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the shipment command and returns the stored invoice.
//
// Fails with errs.ObjectNotFoundError when the invoice does not exist and
// with invoice.ErrInvoiceLocked when it has already shipped.
func (h *MarkInvoiceShippedCommandHandler) Handle(ctx context.Context, cmd MarkInvoiceShippedCommand) (*invoice.Invoice, error) {
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

	if err = inv.MarkShipped(cmd.ShipInfo(), h.now()); err != nil {
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
