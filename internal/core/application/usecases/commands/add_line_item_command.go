package commands

import (
	"errors"

	"store/internal/pkg/guard"
)

var (
	ErrAddLineItemCommandIsNotConstructed = errors.New(
		"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
	)
	ErrPersonIDIsInvalid   = errors.New("person id must be greater than 0")
	ErrInvoiceIDIsInvalid  = errors.New("invoice id must be greater than 0")
	ErrItemIDIsInvalid     = errors.New("item id must be greater than 0")
	ErrLineItemIDIsInvalid = errors.New("line item id must be greater than 0")
	ErrQuantityIsInvalid   = errors.New("quantity must be greater than 0")
)

// AddLineItemCommand represents a request to put a catalog item into a
// person's cart. The cart is resolved on the fly: an existing unpaid invoice
// is reused, otherwise an empty cart is created first. If the cart already
// carries the item, quantities merge instead of creating a second row.
//
// Example:
//
//	cmd, err := NewAddLineItemCommand(personID, itemID, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid line item data: %w", err)
//	}
//
//	handler := NewAddLineItemCommandHandler(uowFactory)
//	lineItem, err := handler.Handle(ctx, cmd)
type AddLineItemCommand struct { //nolint:recvcheck //using for validation
	personID int64
	itemID   int64
	quantity int

	guard guard.ConstructorGuard
}

// NewAddLineItemCommand creates a command to add an item to a person's cart.
// Validates that both identifiers and the quantity are positive.
func NewAddLineItemCommand(personID, itemID int64, quantity int) (AddLineItemCommand, error) {
	cmd := AddLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPersonID(personID),
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddLineItemCommandIsNotConstructed if validation fails.
func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

// PersonID returns the cart owner's identifier.
func (c AddLineItemCommand) PersonID() int64 {
	return c.personID
}

// ItemID returns the catalog item's identifier.
func (c AddLineItemCommand) ItemID() int64 {
	return c.itemID
}

// Quantity returns the number of units to add.
func (c AddLineItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddLineItemCommand) setPersonID(personID int64) error {
	if personID <= 0 {
		return ErrPersonIDIsInvalid
	}

	c.personID = personID
	return nil
}

func (c *AddLineItemCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return ErrItemIDIsInvalid
	}

	c.itemID = itemID
	return nil
}

func (c *AddLineItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
