package commands

import (
	"context"
	"time"

	"store/internal/core/domain/model/invoice"
)

// MarkInvoicePaidCommandHandler handles payment recording. The payment date
// is taken at handling time; from then on the invoice's line items are frozen
// and the person's cart slot is free again.
type MarkInvoicePaidCommandHandler struct {
	uowFactory InvoiceUoWFactory
	now        func() time.Time
}

// NewMarkInvoicePaidCommandHandler creates a handler for payment recording.
// Requires an InvoiceUoWFactory for transactional persistence.
func NewMarkInvoicePaidCommandHandler(uowFactory InvoiceUoWFactory) MarkInvoicePaidCommandHandler {
	return MarkInvoicePaidCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the payment command and returns the stored invoice.
//
// Fails with errs.ObjectNotFoundError when the invoice does not exist, with
// invoice.ErrInvoiceLocked when it has shipped, and with
// invoice.ErrInvoiceAlreadyPaid when payment was already recorded.
func (h *MarkInvoicePaidCommandHandler) Handle(ctx context.Context, cmd MarkInvoicePaidCommand) (*invoice.Invoice, error) {
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

	if err = inv.MarkPaid(cmd.PaymentInfo(), h.now()); err != nil {
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
