package invoice

import (
	"errors"
	"time"

	"store/internal/core/domain/model/item"
	"store/internal/core/domain/model/kernel"
	"store/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
	// created through the NewCart or RestoreInvoice factory methods.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewCart or RestoreInvoice constructor")

	// ErrLineItemLocked fires on any mutation of a line item whose invoice has
	// been paid. The message doubles as the stable error kind reported to callers.
	ErrLineItemLocked = errors.New("no_alter_paid_lineitem")

	// ErrInvoiceLocked fires on any mutation or deletion of a shipped invoice.
	// The message doubles as the stable error kind reported to callers.
	ErrInvoiceLocked = errors.New("no_alter_shipped_invoice")

	// ErrInvoiceAlreadyPaid is returned when payment is recorded twice.
	ErrInvoiceAlreadyPaid = errors.New("invoice is already paid")

	// ErrLineItemNotFound is returned when a referenced line item is not part
	// of the invoice.
	ErrLineItemNotFound = errors.New("line item not found")

	// ErrDuplicateCart is reported by storage when inserting a second unpaid
	// invoice for the same person. Callers losing the race reload the winner.
	ErrDuplicateCart = errors.New("person already has an active cart")
)

// Invoice is the aggregate root of the order engine. An invoice with no
// payment date is a cart (a draft order, at most one live per person); setting
// the payment date places the order and freezes its line items; setting the
// ship date makes the invoice terminal and fully immutable.
//
// Invoice maintains these invariants:
//   - total == subtotal + shipping after every mutation
//   - line item prices, subtotal, shipping and total are derived; every
//     mutator ends by recomputing them synchronously
//   - at most one line item per catalog item; adding an item already on the
//     invoice merges quantities
//   - line items of a paid invoice are immutable (ErrLineItemLocked)
//   - a shipped invoice is immutable and undeletable (ErrInvoiceLocked)
type Invoice struct {
	id          int64
	personID    int64
	orderDate   time.Time
	paymentDate *time.Time
	paymentInfo *string
	subtotal    decimal.Decimal
	shipping    decimal.Decimal
	total       decimal.Decimal
	country     kernel.Country
	address     *string
	shipDate    *time.Time
	shipInfo    *string
	lineItems   []*LineItem

	isConstructed bool
}

// NewCart creates a fresh cart for a person. The destination defaults are the
// caller's responsibility (person's first address, else the system default).
// The id stays zero until the cart is persisted.
func NewCart(personID int64, orderDate time.Time, country kernel.Country, address *string) (*Invoice, error) {
	if personID <= 0 {
		return nil, errs.NewValueIsInvalidError("person id")
	}
	if err := country.Validate(); err != nil {
		return nil, err
	}

	inv := &Invoice{
		personID:      personID,
		orderDate:     orderDate,
		subtotal:      decimal.Zero,
		shipping:      decimal.Zero,
		total:         decimal.Zero,
		country:       country,
		address:       address,
		isConstructed: true,
	}

	return inv, nil
}

// RestoreInvoice reconstructs an invoice aggregate from persistent storage,
// including all of its line items.
func RestoreInvoice(
	id, personID int64,
	orderDate time.Time,
	paymentDate *time.Time,
	paymentInfo *string,
	subtotal, shipping, total decimal.Decimal,
	country kernel.Country,
	address *string,
	shipDate *time.Time,
	shipInfo *string,
	lineItems []*LineItem,
) (*Invoice, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("invoice id")
	}
	if personID <= 0 {
		return nil, errs.NewValueIsInvalidError("person id")
	}
	if err := country.Validate(); err != nil {
		return nil, err
	}
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return nil, err
		}
	}

	inv := &Invoice{
		id:            id,
		personID:      personID,
		orderDate:     orderDate,
		paymentDate:   paymentDate,
		paymentInfo:   paymentInfo,
		subtotal:      subtotal,
		shipping:      shipping,
		total:         total,
		country:       country,
		address:       address,
		shipDate:      shipDate,
		shipInfo:      shipInfo,
		isConstructed: true,
	}
	inv.lineItems = make([]*LineItem, len(lineItems))
	copy(inv.lineItems, lineItems)

	return inv, nil
}

// Validate ensures the Invoice was properly constructed.
func (inv *Invoice) Validate() error {
	if inv == nil || !inv.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// IsEqual compares two invoices by their unique identifiers.
func (inv *Invoice) IsEqual(other *Invoice) bool {
	return other != nil && inv.id == other.id
}

// ID returns the invoice's unique identifier, or 0 before first persistence.
func (inv *Invoice) ID() int64 {
	return inv.id
}

// PersonID returns the owning person's identifier.
func (inv *Invoice) PersonID() int64 {
	return inv.personID
}

// OrderDate returns the creation date of the cart.
func (inv *Invoice) OrderDate() time.Time {
	return inv.orderDate
}

// PaymentDate returns when payment was recorded, or nil while still a cart.
func (inv *Invoice) PaymentDate() *time.Time {
	return inv.paymentDate
}

// PaymentInfo returns the free-form payment reference, or nil while unpaid.
func (inv *Invoice) PaymentInfo() *string {
	return inv.paymentInfo
}

// Subtotal returns the derived sum of all line item prices.
func (inv *Invoice) Subtotal() decimal.Decimal {
	return inv.subtotal
}

// Shipping returns the derived shipping fee for the current destination and weight.
func (inv *Invoice) Shipping() decimal.Decimal {
	return inv.shipping
}

// Total returns the derived grand total. Always subtotal + shipping.
func (inv *Invoice) Total() decimal.Decimal {
	return inv.total
}

// Country returns the destination country.
func (inv *Invoice) Country() kernel.Country {
	return inv.country
}

// Address returns the destination address snapshot, or nil if none was taken.
func (inv *Invoice) Address() *string {
	return inv.address
}

// ShipDate returns when the invoice was shipped, or nil while unshipped.
func (inv *Invoice) ShipDate() *time.Time {
	return inv.shipDate
}

// ShipInfo returns the free-form shipment reference, or nil while unshipped.
func (inv *Invoice) ShipInfo() *string {
	return inv.shipInfo
}

// Status derives the lifecycle state from the payment and shipment dates.
func (inv *Invoice) Status() Status {
	switch {
	case inv.shipDate != nil:
		return StatusShipped
	case inv.paymentDate != nil:
		return StatusPlaced
	default:
		return StatusCart
	}
}

// IsCart reports whether the invoice is still an unpaid draft.
func (inv *Invoice) IsCart() bool {
	return inv.paymentDate == nil
}

// LineItems returns the invoice's line items.
// The returned slice is a copy to prevent external modification.
func (inv *Invoice) LineItems() []*LineItem {
	out := make([]*LineItem, len(inv.lineItems))
	copy(out, inv.lineItems)
	return out
}

// Weight returns the total shipment weight: the sum over all line items of
// unit weight times quantity. Weightless items contribute nothing.
func (inv *Invoice) Weight() decimal.Decimal {
	weight := decimal.Zero
	for _, li := range inv.lineItems {
		weight = weight.Add(li.weight())
	}
	return weight
}

// AddItem upserts a catalog item onto the invoice: if a line item for the item
// already exists its quantity is increased by the given amount, otherwise a
// new line item is created. Quantity must be positive. Totals are recomputed.
//
// Returns the resulting line item.
func (inv *Invoice) AddItem(it *item.Item, quantity int) (*LineItem, error) {
	if err := inv.ensureLineItemsMutable(); err != nil {
		return nil, err
	}
	if err := it.Validate(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidError("quantity")
	}

	if existing := inv.findLineItemByItem(it.ID()); existing != nil {
		existing.setQuantity(existing.quantity + quantity)
		inv.recalculate()
		return existing, nil
	}

	li, err := newLineItem(inv.id, it, quantity)
	if err != nil {
		return nil, err
	}

	inv.lineItems = append(inv.lineItems, li)
	inv.recalculate()
	return li, nil
}

// UpdateLineItem sets a line item's quantity and recomputes its price and the
// invoice totals. A quantity of zero removes the line item instead; removed is
// true and the returned line item is the deleted row.
//
// Fails with ErrLineItemLocked once the invoice is paid, and with
// ErrLineItemNotFound when the line item is not part of the invoice.
func (inv *Invoice) UpdateLineItem(lineItemID int64, quantity int) (li *LineItem, removed bool, err error) {
	if err := inv.ensureLineItemsMutable(); err != nil {
		return nil, false, err
	}
	if quantity < 0 {
		return nil, false, errs.NewValueIsInvalidError("quantity")
	}

	li = inv.findLineItem(lineItemID)
	if li == nil {
		return nil, false, ErrLineItemNotFound
	}

	if quantity == 0 {
		inv.removeLineItem(lineItemID)
		inv.recalculate()
		return li, true, nil
	}

	li.setQuantity(quantity)
	inv.recalculate()
	return li, false, nil
}

// RemoveLineItem deletes a line item from the invoice and recomputes totals.
//
// Fails with ErrLineItemLocked once the invoice is paid, and with
// ErrLineItemNotFound when the line item is not part of the invoice.
func (inv *Invoice) RemoveLineItem(lineItemID int64) (*LineItem, error) {
	if err := inv.ensureLineItemsMutable(); err != nil {
		return nil, err
	}

	li := inv.findLineItem(lineItemID)
	if li == nil {
		return nil, ErrLineItemNotFound
	}

	inv.removeLineItem(lineItemID)
	inv.recalculate()
	return li, nil
}

// SetDestination updates the destination country (and the address snapshot
// when given) and recomputes shipping and total.
//
// The shipped lock is checked before the country code is validated, so a
// locked invoice always reports ErrInvoiceLocked, never an invalid country.
func (inv *Invoice) SetDestination(countryCode string, address *string) error {
	if err := inv.ensureMutable(); err != nil {
		return err
	}

	country, err := kernel.NewCountry(countryCode)
	if err != nil {
		return err
	}

	inv.country = country
	if address != nil {
		inv.address = address
	}
	inv.recalculate()
	return nil
}

// MarkPaid records payment, transitioning the invoice from Cart to Placed and
// freezing its line items from now on.
//
// Fails with ErrInvoiceLocked when the invoice has shipped and with
// ErrInvoiceAlreadyPaid when payment was already recorded.
func (inv *Invoice) MarkPaid(paymentInfo string, at time.Time) error {
	if err := inv.ensureMutable(); err != nil {
		return err
	}
	if inv.paymentDate != nil {
		return ErrInvoiceAlreadyPaid
	}

	inv.paymentDate = &at
	inv.paymentInfo = &paymentInfo
	return nil
}

// MarkShipped records shipment, making the invoice terminal and fully
// immutable. Fails with ErrInvoiceLocked when already shipped.
func (inv *Invoice) MarkShipped(shipInfo string, at time.Time) error {
	if err := inv.ensureMutable(); err != nil {
		return err
	}

	inv.shipDate = &at
	inv.shipInfo = &shipInfo
	return nil
}

// EnsureDeletable checks the shipped lock that guards invoice deletion.
// Deletion cascades to line items, so only the invoice-level lock applies.
func (inv *Invoice) EnsureDeletable() error {
	return inv.ensureMutable()
}

// ensureMutable rejects mutation of shipped invoices.
func (inv *Invoice) ensureMutable() error {
	if inv.shipDate != nil {
		return ErrInvoiceLocked
	}
	return nil
}

// ensureLineItemsMutable rejects line item mutation once the invoice is paid.
func (inv *Invoice) ensureLineItemsMutable() error {
	if inv.paymentDate != nil {
		return ErrLineItemLocked
	}
	return nil
}

// recalculate rederives every computed field from the current line items:
// subtotal, shipment weight, shipping fee and grand total. Called at the end
// of every mutator so totals are never observably stale.
func (inv *Invoice) recalculate() {
	subtotal := decimal.Zero
	for _, li := range inv.lineItems {
		subtotal = subtotal.Add(li.price)
	}

	inv.subtotal = subtotal
	inv.shipping = decimal.NewFromInt(int64(kernel.ShippingCost(inv.country.Code(), inv.Weight())))
	inv.total = inv.subtotal.Add(inv.shipping)
}

func (inv *Invoice) findLineItem(lineItemID int64) *LineItem {
	for _, li := range inv.lineItems {
		if li.id == lineItemID {
			return li
		}
	}
	return nil
}

func (inv *Invoice) findLineItemByItem(itemID int64) *LineItem {
	for _, li := range inv.lineItems {
		if li.itemID == itemID {
			return li
		}
	}
	return nil
}

func (inv *Invoice) removeLineItem(lineItemID int64) {
	for i, li := range inv.lineItems {
		if li.id == lineItemID {
			inv.lineItems = append(inv.lineItems[:i], inv.lineItems[i+1:]...)
			return
		}
	}
}
