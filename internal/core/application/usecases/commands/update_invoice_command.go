package commands

import (
	"errors"

	"store/internal/pkg/guard"
)

var (
	ErrUpdateInvoiceCommandIsNotConstructed = errors.New(
		"UpdateInvoiceCommand must be created via NewUpdateInvoiceCommand constructor",
	)
	ErrCountryIsRequired = errors.New("country is required")
)

// UpdateInvoiceCommand represents a request to change an invoice's destination
// country and, optionally, its address snapshot.
//
// The country code is carried as the raw input string: whether it names an
// allowed country is decided by the aggregate, after the shipped lock has been
// checked, so a locked invoice reports the lock rather than a bad country.
type UpdateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID   int64
	countryCode string
	address     *string

	guard guard.ConstructorGuard
}

// NewUpdateInvoiceCommand creates a command to update an invoice's destination.
// Validates that the invoice id is positive and a country code is present; the
// code's value is validated later by the aggregate.
func NewUpdateInvoiceCommand(invoiceID int64, countryCode string, address *string) (UpdateInvoiceCommand, error) {
	cmd := UpdateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(invoiceID),
		cmd.setCountryCode(countryCode),
	); err != nil {
		return UpdateInvoiceCommand{}, err
	}

	cmd.address = address
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateInvoiceCommandIsNotConstructed if validation fails.
func (c UpdateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the target invoice's identifier.
func (c UpdateInvoiceCommand) InvoiceID() int64 {
	return c.invoiceID
}

// CountryCode returns the raw destination country code.
func (c UpdateInvoiceCommand) CountryCode() string {
	return c.countryCode
}

// Address returns the new address snapshot, or nil to keep the current one.
func (c UpdateInvoiceCommand) Address() *string {
	return c.address
}

func (c *UpdateInvoiceCommand) setInvoiceID(invoiceID int64) error {
	if invoiceID <= 0 {
		return ErrInvoiceIDIsInvalid
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *UpdateInvoiceCommand) setCountryCode(countryCode string) error {
	if countryCode == "" {
		return ErrCountryIsRequired
	}

	c.countryCode = countryCode
	return nil
}
