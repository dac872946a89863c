// Package queries contains read-only operations that retrieve system state.
// Implements the Query side of the CQRS architecture: handlers run raw SQL
// against the store and assemble denormalized views, bypassing the domain
// aggregates entirely.
package queries

import (
	"context"
	"time"

	"store/internal/core/domain/model/invoice"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemView represents a catalog item in query responses.
type ItemView struct {
	ID     int64
	Name   string
	Price  decimal.Decimal
	Weight *decimal.Decimal
}

// AddressView represents a person's address in query responses.
type AddressView struct {
	ID       int64
	PersonID int64
	Country  string
	Address  string
}

// LineItemView represents an invoice line with its item's catalog name.
type LineItemView struct {
	ID        int64
	InvoiceID int64
	ItemID    int64
	ItemName  string
	Quantity  int
	Price     decimal.Decimal
}

// InvoiceView is the denormalized invoice shape returned by all invoice
// queries: header fields, the owner's name, the derived status and the full
// set of line items with item names.
type InvoiceView struct {
	ID          int64
	PersonID    int64
	PersonName  string
	OrderDate   time.Time
	PaymentDate *time.Time
	PaymentInfo *string
	Subtotal    decimal.Decimal
	Shipping    decimal.Decimal
	Total       decimal.Decimal
	Country     string
	Address     *string
	ShipDate    *time.Time
	ShipInfo    *string
	Status      string
	LineItems   []LineItemView
}

const invoiceViewSelect = `
	SELECT
		i.id,
		i.person_id,
		p.name,
		i.order_date,
		i.payment_date,
		i.payment_info,
		i.subtotal,
		i.shipping,
		i.total,
		i.country,
		i.address,
		i.ship_date,
		i.ship_info
	FROM invoices i
	JOIN persons p ON p.id = i.person_id
`

// queryInvoiceViews runs an invoice header query and attaches line items.
// The query must project the invoiceViewSelect columns.
func queryInvoiceViews(ctx context.Context, db *gorm.DB, query string, args ...any) ([]InvoiceView, error) {
	views := make([]InvoiceView, 0)

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view InvoiceView

		err = rows.Scan(
			&view.ID,
			&view.PersonID,
			&view.PersonName,
			&view.OrderDate,
			&view.PaymentDate,
			&view.PaymentInfo,
			&view.Subtotal,
			&view.Shipping,
			&view.Total,
			&view.Country,
			&view.Address,
			&view.ShipDate,
			&view.ShipInfo,
		)
		if err != nil {
			return nil, err
		}

		view.Status = deriveStatus(view.PaymentDate, view.ShipDate)
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range views {
		lineItems, liErr := queryLineItemViews(ctx, db, views[i].ID)
		if liErr != nil {
			return nil, liErr
		}
		views[i].LineItems = lineItems
	}

	return views, nil
}

func queryLineItemViews(ctx context.Context, db *gorm.DB, invoiceID int64) ([]LineItemView, error) {
	lineItems := make([]LineItemView, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.invoice_id,
			l.item_id,
			it.name,
			l.quantity,
			l.price
		FROM line_items l
		JOIN items it ON it.id = l.item_id
		WHERE l.invoice_id = ?
		ORDER BY l.id
	`, invoiceID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var li LineItemView

		err = rows.Scan(
			&li.ID,
			&li.InvoiceID,
			&li.ItemID,
			&li.ItemName,
			&li.Quantity,
			&li.Price,
		)
		if err != nil {
			return nil, err
		}

		lineItems = append(lineItems, li)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lineItems, nil
}

func deriveStatus(paymentDate, shipDate *time.Time) string {
	switch {
	case shipDate != nil:
		return invoice.StatusShipped.String()
	case paymentDate != nil:
		return invoice.StatusPlaced.String()
	default:
		return invoice.StatusCart.String()
	}
}
