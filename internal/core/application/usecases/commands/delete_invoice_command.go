package commands

import (
	"errors"

	"store/internal/pkg/guard"
)

var ErrDeleteInvoiceCommandIsNotConstructed = errors.New(
	"DeleteInvoiceCommand must be created via NewDeleteInvoiceCommand constructor",
)

// DeleteInvoiceCommand represents a request to delete an invoice together
// with all of its line items.
type DeleteInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID int64

	guard guard.ConstructorGuard
}

// NewDeleteInvoiceCommand creates a command to delete an invoice.
func NewDeleteInvoiceCommand(invoiceID int64) (DeleteInvoiceCommand, error) {
	cmd := DeleteInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setInvoiceID(invoiceID); err != nil {
		return DeleteInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteInvoiceCommandIsNotConstructed if validation fails.
func (c DeleteInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrDeleteInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the target invoice's identifier.
func (c DeleteInvoiceCommand) InvoiceID() int64 {
	return c.invoiceID
}

func (c *DeleteInvoiceCommand) setInvoiceID(invoiceID int64) error {
	if invoiceID <= 0 {
		return ErrInvoiceIDIsInvalid
	}

	c.invoiceID = invoiceID
	return nil
}
