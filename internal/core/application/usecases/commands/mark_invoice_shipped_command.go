package commands

import (
	"errors"

	"store/internal/pkg/guard"
)

var (
	ErrMarkInvoiceShippedCommandIsNotConstructed = errors.New(
		"MarkInvoiceShippedCommand must be created via NewMarkInvoiceShippedCommand constructor",
	)
	ErrShipInfoIsRequired = errors.New("ship info is required")
)

// MarkInvoiceShippedCommand represents a request to record shipment for an
// invoice, making it terminal.
type MarkInvoiceShippedCommand struct { //nolint:recvcheck //using for validation
	invoiceID int64
	shipInfo  string

	guard guard.ConstructorGuard
}

// NewMarkInvoiceShippedCommand creates a command to record shipment.
// Validates that the invoice id is positive and a shipment reference is given.
func NewMarkInvoiceShippedCommand(invoiceID int64, shipInfo string) (MarkInvoiceShippedCommand, error) {
	cmd := MarkInvoiceShippedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(invoiceID),
		cmd.setShipInfo(shipInfo),
	); err != nil {
		return MarkInvoiceShippedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkInvoiceShippedCommandIsNotConstructed if validation fails.
func (c MarkInvoiceShippedCommand) Validate() error {
	return c.guard.Validate(ErrMarkInvoiceShippedCommandIsNotConstructed)
}

// InvoiceID returns the target invoice's identifier.
func (c MarkInvoiceShippedCommand) InvoiceID() int64 {
	return c.invoiceID
}

// ShipInfo returns the free-form shipment reference.
func (c MarkInvoiceShippedCommand) ShipInfo() string {
	return c.shipInfo
}

func (c *MarkInvoiceShippedCommand) setInvoiceID(invoiceID int64) error {
	if invoiceID <= 0 {
		return ErrInvoiceIDIsInvalid
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *MarkInvoiceShippedCommand) setShipInfo(shipInfo string) error {
	if shipInfo == "" {
		return ErrShipInfoIsRequired
	}

	c.shipInfo = shipInfo
	return nil
}
