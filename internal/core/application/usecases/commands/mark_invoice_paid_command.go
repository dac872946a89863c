package commands

import (
	"errors"

	"store/internal/pkg/guard"
)

var (
	ErrMarkInvoicePaidCommandIsNotConstructed = errors.New(
		"MarkInvoicePaidCommand must be created via NewMarkInvoicePaidCommand constructor",
	)
	ErrPaymentInfoIsRequired = errors.New("payment info is required")
)

// MarkInvoicePaidCommand represents a request to record payment for an
// invoice, turning the cart into a placed order.
type MarkInvoicePaidCommand struct { //nolint:recvcheck //using for validation
	invoiceID   int64
	paymentInfo string

	guard guard.ConstructorGuard
}

// NewMarkInvoicePaidCommand creates a command to record payment.
// Validates that the invoice id is positive and a payment reference is given.
func NewMarkInvoicePaidCommand(invoiceID int64, paymentInfo string) (MarkInvoicePaidCommand, error) {
	cmd := MarkInvoicePaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(invoiceID),
		cmd.setPaymentInfo(paymentInfo),
	); err != nil {
		return MarkInvoicePaidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkInvoicePaidCommandIsNotConstructed if validation fails.
func (c MarkInvoicePaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkInvoicePaidCommandIsNotConstructed)
}

// InvoiceID returns the target invoice's identifier.
func (c MarkInvoicePaidCommand) InvoiceID() int64 {
	return c.invoiceID
}

// PaymentInfo returns the free-form payment reference.
func (c MarkInvoicePaidCommand) PaymentInfo() string {
	return c.paymentInfo
}

func (c *MarkInvoicePaidCommand) setInvoiceID(invoiceID int64) error {
	if invoiceID <= 0 {
		return ErrInvoiceIDIsInvalid
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *MarkInvoicePaidCommand) setPaymentInfo(paymentInfo string) error {
	if paymentInfo == "" {
		return ErrPaymentInfoIsRequired
	}

	c.paymentInfo = paymentInfo
	return nil
}
