// Package invoicerepo provides data transfer objects and mapping functions for
// invoice persistence. This package implements the repository pattern for the
// invoice aggregate, handling the conversion between domain entities and
// database representations, including the line item child rows.
package invoicerepo

import (
	"time"

	"store/internal/core/domain/model/invoice"
	"store/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// InvoiceDTO represents the database structure for persisting invoice
// aggregates. The partial unique index on person_id enforces the at most one
// live cart per person rule at the storage level: a cart is a row whose
// payment_date is still null.
type InvoiceDTO struct {
	ID          int64 `gorm:"primaryKey"`
	PersonID    int64 `gorm:"index;not null;uniqueIndex:idx_invoices_person_cart,where:payment_date IS NULL"`
	OrderDate   time.Time
	PaymentDate *time.Time
	PaymentInfo *string
	Subtotal    decimal.Decimal `gorm:"type:numeric;not null"`
	Shipping    decimal.Decimal `gorm:"type:numeric;not null"`
	Total       decimal.Decimal `gorm:"type:numeric;not null"`
	Country     string          `gorm:"type:varchar(2);not null"`
	Address     *string
	ShipDate    *time.Time
	ShipInfo    *string
	LineItems   []LineItemDTO `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for invoice entities.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// LineItemDTO represents the database structure of an invoice line. The unique
// index on (invoice_id, item_id) backs the one line per catalog item rule;
// catalog price and weight are snapshots taken when the item was added.
type LineItemDTO struct {
	ID            int64           `gorm:"primaryKey"`
	InvoiceID     int64           `gorm:"index;not null;uniqueIndex:idx_line_items_invoice_item"`
	ItemID        int64           `gorm:"not null;uniqueIndex:idx_line_items_invoice_item"`
	Quantity      int             `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:numeric;not null"`
	CatalogPrice  decimal.Decimal `gorm:"type:numeric;not null"`
	CatalogWeight decimal.Decimal `gorm:"type:numeric;not null"`
}

// TableName specifies the database table name for invoice lines.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// fromDomain converts an invoice domain aggregate to its database
// representation, including all line items.
func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	lineItems := aggregate.LineItems()
	lineItemDTOs := make([]LineItemDTO, 0, len(lineItems))
	for _, li := range lineItems {
		lineItemDTOs = append(lineItemDTOs, LineItemDTO{
			ID:            li.ID(),
			InvoiceID:     li.InvoiceID(),
			ItemID:        li.ItemID(),
			Quantity:      li.Quantity(),
			Price:         li.Price(),
			CatalogPrice:  li.CatalogPrice(),
			CatalogWeight: li.CatalogWeight(),
		})
	}

	return InvoiceDTO{
		ID:          aggregate.ID(),
		PersonID:    aggregate.PersonID(),
		OrderDate:   aggregate.OrderDate(),
		PaymentDate: aggregate.PaymentDate(),
		PaymentInfo: aggregate.PaymentInfo(),
		Subtotal:    aggregate.Subtotal(),
		Shipping:    aggregate.Shipping(),
		Total:       aggregate.Total(),
		Country:     aggregate.Country().Code(),
		Address:     aggregate.Address(),
		ShipDate:    aggregate.ShipDate(),
		ShipInfo:    aggregate.ShipInfo(),
		LineItems:   lineItemDTOs,
	}
}

// toDomain converts a database DTO to an invoice domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreInvoice.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	country, err := kernel.NewCountry(dto.Country)
	if err != nil {
		return nil, err
	}

	lineItems := make([]*invoice.LineItem, 0, len(dto.LineItems))
	for _, liDTO := range dto.LineItems {
		li, liErr := invoice.RestoreLineItem(
			liDTO.ID,
			liDTO.InvoiceID,
			liDTO.ItemID,
			liDTO.Quantity,
			liDTO.Price,
			liDTO.CatalogPrice,
			liDTO.CatalogWeight,
		)
		if liErr != nil {
			return nil, liErr
		}
		lineItems = append(lineItems, li)
	}

	return invoice.RestoreInvoice(
		dto.ID,
		dto.PersonID,
		dto.OrderDate,
		dto.PaymentDate,
		dto.PaymentInfo,
		dto.Subtotal,
		dto.Shipping,
		dto.Total,
		country,
		dto.Address,
		dto.ShipDate,
		dto.ShipInfo,
		lineItems,
	)
}
