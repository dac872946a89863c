package commands

import (
	"errors"

	"store/internal/pkg/guard"
)

var ErrDeleteLineItemCommandIsNotConstructed = errors.New(
	"DeleteLineItemCommand must be created via NewDeleteLineItemCommand constructor",
)

// DeleteLineItemCommand represents a request to remove a line item from its
// invoice. Deleting an unknown line item is not an error.
type DeleteLineItemCommand struct { //nolint:recvcheck //using for validation
	lineItemID int64

	guard guard.ConstructorGuard
}

// NewDeleteLineItemCommand creates a command to delete a line item.
func NewDeleteLineItemCommand(lineItemID int64) (DeleteLineItemCommand, error) {
	cmd := DeleteLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setLineItemID(lineItemID); err != nil {
		return DeleteLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteLineItemCommandIsNotConstructed if validation fails.
func (c DeleteLineItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLineItemCommandIsNotConstructed)
}

// LineItemID returns the target line item's identifier.
func (c DeleteLineItemCommand) LineItemID() int64 {
	return c.lineItemID
}

func (c *DeleteLineItemCommand) setLineItemID(lineItemID int64) error {
	if lineItemID <= 0 {
		return ErrLineItemIDIsInvalid
	}

	c.lineItemID = lineItemID
	return nil
}
