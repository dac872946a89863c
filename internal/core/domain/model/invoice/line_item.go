package invoice

import (
	"errors"

	"store/internal/core/domain/model/item"
	"store/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through newLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem constructor")

// LineItem is one (item, quantity) entry on an invoice. Its price is derived
// from the catalog price of the item times the quantity and is recomputed on
// every quantity change.
//
// LineItem is owned exclusively by its Invoice; all mutation goes through the
// aggregate so the paid/shipped locks and totals recomputation always apply.
// Each line item carries a snapshot of the catalog price and unit weight taken
// when the aggregate was loaded, so recomputation inside one transaction stays
// consistent.
type LineItem struct {
	id        int64
	invoiceID int64
	itemID    int64
	quantity  int
	price     decimal.Decimal

	catalogPrice  decimal.Decimal
	catalogWeight decimal.Decimal

	isConstructed bool
}

// newLineItem creates a fresh line item for a catalog item. The id stays zero
// until the row is persisted.
func newLineItem(invoiceID int64, it *item.Item, quantity int) (*LineItem, error) {
	if err := it.Validate(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidError("quantity")
	}

	li := &LineItem{
		invoiceID:     invoiceID,
		itemID:        it.ID(),
		catalogPrice:  it.Price(),
		isConstructed: true,
	}
	if w := it.Weight(); w != nil {
		li.catalogWeight = *w
	}
	li.setQuantity(quantity)

	return li, nil
}

// RestoreLineItem reconstructs a line item from persistent storage.
// catalogPrice and catalogWeight are the current catalog values of the
// referenced item; a weightless item passes a zero catalogWeight.
func RestoreLineItem(
	id, invoiceID, itemID int64,
	quantity int,
	price decimal.Decimal,
	catalogPrice decimal.Decimal,
	catalogWeight decimal.Decimal,
) (*LineItem, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("line item id")
	}
	if itemID <= 0 {
		return nil, errs.NewValueIsInvalidError("item id")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidError("quantity")
	}

	return &LineItem{
		id:            id,
		invoiceID:     invoiceID,
		itemID:        itemID,
		quantity:      quantity,
		price:         price,
		catalogPrice:  catalogPrice,
		catalogWeight: catalogWeight,
		isConstructed: true,
	}, nil
}

// Validate ensures the LineItem was properly constructed.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier, or 0 before first persistence.
func (li *LineItem) ID() int64 {
	return li.id
}

// InvoiceID returns the owning invoice's identifier.
func (li *LineItem) InvoiceID() int64 {
	return li.invoiceID
}

// ItemID returns the referenced catalog item's identifier.
func (li *LineItem) ItemID() int64 {
	return li.itemID
}

// Quantity returns the ordered quantity. Always positive; a quantity of zero
// deletes the line item instead.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// Price returns the derived price: catalog price times quantity.
func (li *LineItem) Price() decimal.Decimal {
	return li.price
}

// CatalogPrice returns the unit price snapshot used for recomputation.
func (li *LineItem) CatalogPrice() decimal.Decimal {
	return li.catalogPrice
}

// CatalogWeight returns the unit weight snapshot; zero for weightless items.
func (li *LineItem) CatalogWeight() decimal.Decimal {
	return li.catalogWeight
}

// weight returns the line item's contribution to the shipment weight.
func (li *LineItem) weight() decimal.Decimal {
	return li.catalogWeight.Mul(decimal.NewFromInt(int64(li.quantity)))
}

// setQuantity updates the quantity and recomputes the derived price.
func (li *LineItem) setQuantity(quantity int) {
	li.quantity = quantity
	li.price = li.catalogPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
