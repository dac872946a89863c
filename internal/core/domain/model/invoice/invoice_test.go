package invoice

import (
	"testing"
	"time"

	"store/internal/core/domain/model/item"
	"store/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCountry(t *testing.T, code string) kernel.Country {
	t.Helper()
	country, err := kernel.NewCountry(code)
	require.NoError(t, err)
	return country
}

func mustItem(t *testing.T, id int64, name string, price string, weight string) *item.Item {
	t.Helper()
	var w *decimal.Decimal
	if weight != "" {
		d := decimal.RequireFromString(weight)
		w = &d
	}
	it, err := item.RestoreItem(id, name, decimal.RequireFromString(price), w)
	require.NoError(t, err)
	return it
}

func cartFixture(t *testing.T) *Invoice {
	t.Helper()
	inv, err := NewCart(7, time.Now(), mustCountry(t, "US"), nil)
	require.NoError(t, err)
	return inv
}

func restoredFixture(t *testing.T, id int64, lineItems []*LineItem) *Invoice {
	t.Helper()
	inv, err := RestoreInvoice(id, 7, time.Now(), nil, nil,
		decimal.Zero, decimal.Zero, decimal.Zero,
		mustCountry(t, "US"), nil, nil, nil, lineItems)
	require.NoError(t, err)
	return inv
}

func Test_NewCart(t *testing.T) {
	addr := "24 Motor Ave"
	inv, err := NewCart(7, time.Now(), mustCountry(t, "US"), &addr)

	require.NoError(t, err)
	assert.NoError(t, inv.Validate())
	assert.Equal(t, int64(0), inv.ID())
	assert.Equal(t, int64(7), inv.PersonID())
	assert.Equal(t, StatusCart, inv.Status())
	assert.True(t, inv.IsCart())
	assert.Equal(t, &addr, inv.Address())
	assert.True(t, inv.Subtotal().IsZero())
	assert.True(t, inv.Shipping().IsZero())
	assert.True(t, inv.Total().IsZero())
	assert.Empty(t, inv.LineItems())
}

func Test_NewCart_InvalidPerson(t *testing.T) {
	_, err := NewCart(0, time.Now(), mustCountry(t, "US"), nil)
	assert.Error(t, err)
}

func Test_Invoice_Validate(t *testing.T) {
	var nilInvoice *Invoice
	assert.ErrorIs(t, nilInvoice.Validate(), ErrInvoiceIsNotConstructed)
	assert.ErrorIs(t, (&Invoice{}).Validate(), ErrInvoiceIsNotConstructed)
}

func Test_Invoice_AddItem(t *testing.T) {
	inv := cartFixture(t)
	widget := mustItem(t, 1, "widget", "10.50", "0.25")

	li, err := inv.AddItem(widget, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(1), li.ItemID())
	assert.Equal(t, 2, li.Quantity())
	assert.Equal(t, "21", li.Price().String())
	assert.Equal(t, "21", inv.Subtotal().String())
	// 0.5kg to the US ships for 3.
	assert.Equal(t, "3", inv.Shipping().String())
	assert.Equal(t, "24", inv.Total().String())
}

func Test_Invoice_AddItem_MergesQuantities(t *testing.T) {
	inv := cartFixture(t)
	widget := mustItem(t, 1, "widget", "10.50", "0.25")

	_, err := inv.AddItem(widget, 2)
	require.NoError(t, err)
	li, err := inv.AddItem(widget, 3)
	require.NoError(t, err)

	assert.Len(t, inv.LineItems(), 1)
	assert.Equal(t, 5, li.Quantity())
	assert.Equal(t, "52.5", li.Price().String())
	assert.Equal(t, "52.5", inv.Subtotal().String())
}

func Test_Invoice_AddItem_InvalidQuantity(t *testing.T) {
	inv := cartFixture(t)
	widget := mustItem(t, 1, "widget", "10.50", "")

	_, err := inv.AddItem(widget, 0)
	assert.Error(t, err)

	_, err = inv.AddItem(widget, -1)
	assert.Error(t, err)
}

func Test_Invoice_AddItem_WeightlessItem(t *testing.T) {
	inv := cartFixture(t)
	ebook := mustItem(t, 2, "ebook", "5.00", "")

	_, err := inv.AddItem(ebook, 3)

	require.NoError(t, err)
	assert.True(t, inv.Weight().IsZero())
	assert.True(t, inv.Shipping().IsZero())
	assert.Equal(t, "15", inv.Total().String())
}

func Test_Invoice_AddItem_BulkOrderCrossesWeightBrackets(t *testing.T) {
	inv := cartFixture(t)
	anvil := mustItem(t, 3, "anvil", "5", "1")

	li, err := inv.AddItem(anvil, 10)

	require.NoError(t, err)
	assert.Equal(t, "50", li.Price().String())
	assert.Equal(t, "50", inv.Subtotal().String())
	// 10kg to the US lands in the heaviest bracket.
	assert.Equal(t, "12", inv.Shipping().String())
	assert.Equal(t, "62", inv.Total().String())
}

func Test_Invoice_UpdateLineItem(t *testing.T) {
	inv := cartFixture(t)
	widget := mustItem(t, 1, "widget", "10.50", "0.25")
	added, err := inv.AddItem(widget, 2)
	require.NoError(t, err)

	li, removed, err := inv.UpdateLineItem(added.ID(), 4)

	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 4, li.Quantity())
	assert.Equal(t, "42", li.Price().String())
	assert.Equal(t, "42", inv.Subtotal().String())
	// 1kg to the US ships for 4.
	assert.Equal(t, "4", inv.Shipping().String())
	assert.Equal(t, "46", inv.Total().String())
}

func Test_Invoice_UpdateLineItem_ZeroQuantityRemoves(t *testing.T) {
	inv := cartFixture(t)
	widget := mustItem(t, 1, "widget", "10.50", "0.25")
	added, err := inv.AddItem(widget, 2)
	require.NoError(t, err)

	li, removed, err := inv.UpdateLineItem(added.ID(), 0)

	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, added.ItemID(), li.ItemID())
	assert.Empty(t, inv.LineItems())
	assert.True(t, inv.Subtotal().IsZero())
	assert.True(t, inv.Shipping().IsZero())
	assert.True(t, inv.Total().IsZero())
}

func Test_Invoice_UpdateLineItem_NotFound(t *testing.T) {
	inv := cartFixture(t)

	_, _, err := inv.UpdateLineItem(99, 1)

	assert.ErrorIs(t, err, ErrLineItemNotFound)
}

func Test_Invoice_UpdateLineItem_NegativeQuantity(t *testing.T) {
	inv := cartFixture(t)

	_, _, err := inv.UpdateLineItem(99, -1)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrLineItemNotFound)
}

func Test_Invoice_RemoveLineItem(t *testing.T) {
	inv := cartFixture(t)
	widget := mustItem(t, 1, "widget", "10.50", "0.25")
	gadget := mustItem(t, 2, "gadget", "3.00", "1")
	first, err := inv.AddItem(widget, 1)
	require.NoError(t, err)
	_, err = inv.AddItem(gadget, 1)
	require.NoError(t, err)

	removed, err := inv.RemoveLineItem(first.ID())

	require.NoError(t, err)
	assert.Equal(t, first.ItemID(), removed.ItemID())
	assert.Len(t, inv.LineItems(), 1)
	assert.Equal(t, "3", inv.Subtotal().String())
}

func Test_Invoice_RemoveLineItem_NotFound(t *testing.T) {
	inv := cartFixture(t)

	_, err := inv.RemoveLineItem(99)

	assert.ErrorIs(t, err, ErrLineItemNotFound)
}

func Test_Invoice_PaidInvoice_LocksLineItems(t *testing.T) {
	inv := cartFixture(t)
	widget := mustItem(t, 1, "widget", "10.50", "0.25")
	added, err := inv.AddItem(widget, 2)
	require.NoError(t, err)
	require.NoError(t, inv.MarkPaid("txn-001", time.Now()))

	_, err = inv.AddItem(widget, 1)
	assert.ErrorIs(t, err, ErrLineItemLocked)

	_, _, err = inv.UpdateLineItem(added.ID(), 5)
	assert.ErrorIs(t, err, ErrLineItemLocked)

	_, err = inv.RemoveLineItem(added.ID())
	assert.ErrorIs(t, err, ErrLineItemLocked)

	// The destination of a paid but unshipped invoice stays editable.
	assert.NoError(t, inv.SetDestination("DE", nil))
}

func Test_Invoice_ShippedInvoice_IsImmutable(t *testing.T) {
	inv := cartFixture(t)
	require.NoError(t, inv.MarkPaid("txn-001", time.Now()))
	require.NoError(t, inv.MarkShipped("tracking-42", time.Now()))

	assert.ErrorIs(t, inv.SetDestination("DE", nil), ErrInvoiceLocked)
	assert.ErrorIs(t, inv.MarkPaid("txn-002", time.Now()), ErrInvoiceLocked)
	assert.ErrorIs(t, inv.MarkShipped("tracking-43", time.Now()), ErrInvoiceLocked)
	assert.ErrorIs(t, inv.EnsureDeletable(), ErrInvoiceLocked)
}

func Test_Invoice_ShippedLock_BeforeCountryValidation(t *testing.T) {
	inv := cartFixture(t)
	require.NoError(t, inv.MarkPaid("txn-001", time.Now()))
	require.NoError(t, inv.MarkShipped("tracking-42", time.Now()))

	// The lock wins over validation of the new destination.
	err := inv.SetDestination("bogus", nil)

	assert.ErrorIs(t, err, ErrInvoiceLocked)
	assert.NotErrorIs(t, err, kernel.ErrCountryNotAllowed)
}

func Test_Invoice_SetDestination(t *testing.T) {
	inv := cartFixture(t)
	widget := mustItem(t, 1, "widget", "10.00", "1")
	_, err := inv.AddItem(widget, 1)
	require.NoError(t, err)
	require.Equal(t, "4", inv.Shipping().String())

	addr := "1 Unter den Linden"
	require.NoError(t, inv.SetDestination("DE", &addr))

	assert.Equal(t, "DE", inv.Country().Code())
	assert.Equal(t, &addr, inv.Address())
	// 1kg to Germany ships for 8.
	assert.Equal(t, "8", inv.Shipping().String())
	assert.Equal(t, "18", inv.Total().String())
}

func Test_Invoice_SetDestination_KeepsAddressWhenNil(t *testing.T) {
	addr := "24 Motor Ave"
	inv, err := NewCart(7, time.Now(), mustCountry(t, "US"), &addr)
	require.NoError(t, err)

	require.NoError(t, inv.SetDestination("CA", nil))

	assert.Equal(t, &addr, inv.Address())
}

func Test_Invoice_SetDestination_InvalidCountry(t *testing.T) {
	inv := cartFixture(t)

	err := inv.SetDestination("XX", nil)

	assert.ErrorIs(t, err, kernel.ErrCountryNotAllowed)
	assert.Equal(t, "US", inv.Country().Code())
}

func Test_Invoice_MarkPaid(t *testing.T) {
	inv := cartFixture(t)
	paidAt := time.Now()

	err := inv.MarkPaid("txn-001", paidAt)

	require.NoError(t, err)
	assert.Equal(t, StatusPlaced, inv.Status())
	assert.False(t, inv.IsCart())
	require.NotNil(t, inv.PaymentDate())
	assert.Equal(t, paidAt, *inv.PaymentDate())
	require.NotNil(t, inv.PaymentInfo())
	assert.Equal(t, "txn-001", *inv.PaymentInfo())
}

func Test_Invoice_MarkPaid_Twice(t *testing.T) {
	inv := cartFixture(t)
	require.NoError(t, inv.MarkPaid("txn-001", time.Now()))

	err := inv.MarkPaid("txn-002", time.Now())

	assert.ErrorIs(t, err, ErrInvoiceAlreadyPaid)
	assert.Equal(t, "txn-001", *inv.PaymentInfo())
}

func Test_Invoice_MarkShipped(t *testing.T) {
	inv := cartFixture(t)
	require.NoError(t, inv.MarkPaid("txn-001", time.Now()))
	shippedAt := time.Now()

	err := inv.MarkShipped("tracking-42", shippedAt)

	require.NoError(t, err)
	assert.Equal(t, StatusShipped, inv.Status())
	require.NotNil(t, inv.ShipDate())
	assert.Equal(t, shippedAt, *inv.ShipDate())
	require.NotNil(t, inv.ShipInfo())
	assert.Equal(t, "tracking-42", *inv.ShipInfo())
}

func Test_RestoreInvoice(t *testing.T) {
	li, err := RestoreLineItem(3, 42, 1, 2,
		decimal.RequireFromString("21"),
		decimal.RequireFromString("10.50"),
		decimal.RequireFromString("0.25"))
	require.NoError(t, err)

	inv := restoredFixture(t, 42, []*LineItem{li})

	assert.Equal(t, int64(42), inv.ID())
	require.Len(t, inv.LineItems(), 1)
	assert.Equal(t, int64(3), inv.LineItems()[0].ID())
	assert.Equal(t, "0.5", inv.Weight().String())
}

func Test_RestoreInvoice_InvalidID(t *testing.T) {
	_, err := RestoreInvoice(0, 7, time.Now(), nil, nil,
		decimal.Zero, decimal.Zero, decimal.Zero,
		mustCountry(t, "US"), nil, nil, nil, nil)
	assert.Error(t, err)
}

func Test_Invoice_IsEqual(t *testing.T) {
	a := restoredFixture(t, 42, nil)
	b := restoredFixture(t, 42, nil)
	c := restoredFixture(t, 43, nil)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
