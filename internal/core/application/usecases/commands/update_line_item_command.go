package commands

import (
	"errors"

	"store/internal/pkg/guard"
)

var (
	ErrUpdateLineItemCommandIsNotConstructed = errors.New(
		"UpdateLineItemCommand must be created via NewUpdateLineItemCommand constructor",
	)
	ErrQuantityIsNegative = errors.New("quantity must not be negative")
)

// UpdateLineItemCommand represents a request to change a line item's quantity.
// A quantity of zero removes the line item from its invoice.
type UpdateLineItemCommand struct { //nolint:recvcheck //using for validation
	lineItemID int64
	quantity   int

	guard guard.ConstructorGuard
}

// NewUpdateLineItemCommand creates a command to set a line item's quantity.
// Validates that the identifier is positive and the quantity is not negative;
// zero is allowed and means removal.
func NewUpdateLineItemCommand(lineItemID int64, quantity int) (UpdateLineItemCommand, error) {
	cmd := UpdateLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLineItemID(lineItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateLineItemCommandIsNotConstructed if validation fails.
func (c UpdateLineItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLineItemCommandIsNotConstructed)
}

// LineItemID returns the target line item's identifier.
func (c UpdateLineItemCommand) LineItemID() int64 {
	return c.lineItemID
}

// Quantity returns the new quantity. Zero means the line item is removed.
func (c UpdateLineItemCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateLineItemCommand) setLineItemID(lineItemID int64) error {
	if lineItemID <= 0 {
		return ErrLineItemIDIsInvalid
	}

	c.lineItemID = lineItemID
	return nil
}

func (c *UpdateLineItemCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsNegative
	}

	c.quantity = quantity
	return nil
}
