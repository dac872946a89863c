package commands

import (
	"context"
	"errors"
	"time"

	"store/internal/core/domain/model/invoice"
	"store/internal/core/domain/model/kernel"
	"store/internal/pkg/errs"
)

// AddLineItemCommandHandler handles the business logic for adding items to a
// person's cart. The cart is resolved atomically: an existing unpaid invoice
// is loaded under a row lock, otherwise a fresh cart is created with the
// person's first address as the destination (falling back to the default
// country with no address).
//
// Two concurrent calls for a person without a cart converge on one cart: the
// insert races on a uniqueness guarantee in storage, and the loser retries
// against the winner's row.
type AddLineItemCommandHandler struct {
	uowFactory LineItemUoWFactory
	now        func() time.Time
}

// NewAddLineItemCommandHandler creates a handler for line item additions.
// Requires a LineItemUoWFactory for transactional persistence.
func NewAddLineItemCommandHandler(uowFactory LineItemUoWFactory) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the add command and returns the resulting line item with
// its stored identifier and derived price.
//
// Fails with errs.ObjectNotFoundError when the person or item does not exist.
func (h *AddLineItemCommandHandler) Handle(ctx context.Context, cmd AddLineItemCommand) (*invoice.LineItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	li, err := h.addToCart(ctx, cmd)
	if err == nil || !errors.Is(err, invoice.ErrDuplicateCart) {
		return li, err
	}

	// Lost the cart insert race. The winner's transaction has committed by
	// now, so a fresh attempt finds its cart.
	return h.addToCart(ctx, cmd)
}

func (h *AddLineItemCommandHandler) addToCart(ctx context.Context, cmd AddLineItemCommand) (*invoice.LineItem, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cart, err := h.resolveCart(ctx, uow, cmd.PersonID())
	if err != nil {
		return nil, err
	}

	it, err := uow.ItemRepository().Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	if _, err = cart.AddItem(it, cmd.Quantity()); err != nil {
		return nil, err
	}

	stored, err := uow.InvoiceRepository().Update(ctx, cart)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return lineItemForItem(stored, cmd.ItemID()), nil
}

// resolveCart loads the person's cart under a row lock, creating an empty one
// when none exists. Surfaces invoice.ErrDuplicateCart when a concurrent
// creation wins the insert race.
func (h *AddLineItemCommandHandler) resolveCart(ctx context.Context, uow LineItemUoW, personID int64) (*invoice.Invoice, error) {
	cart, err := uow.InvoiceRepository().GetCartForUpdate(ctx, personID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if _, err = uow.PersonRepository().Get(ctx, personID); err != nil {
		return nil, err
	}

	country, address, err := defaultDestination(ctx, uow, personID)
	if err != nil {
		return nil, err
	}

	cart, err = invoice.NewCart(personID, h.now(), country, address)
	if err != nil {
		return nil, err
	}

	return uow.InvoiceRepository().Add(ctx, cart)
}

// defaultDestination picks the person's first address for a new cart. People
// without addresses get the default country and no address snapshot.
func defaultDestination(ctx context.Context, uow PersonRepoFactory, personID int64) (kernel.Country, *string, error) {
	addr, err := uow.PersonRepository().GetPrimaryAddress(ctx, personID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.DefaultCountry(), nil, nil
		}
		return kernel.Country{}, nil, err
	}

	text := addr.Text()
	return addr.Country(), &text, nil
}

// lineItemForItem returns the stored invoice's line item for the given catalog
// item. Used after persistence so callers see database-assigned identifiers.
func lineItemForItem(inv *invoice.Invoice, itemID int64) *invoice.LineItem {
	for _, li := range inv.LineItems() {
		if li.ItemID() == itemID {
			return li
		}
	}
	return nil
}
