package http

import (
	"time"

	"store/internal/core/application/usecases/queries"
	"store/internal/core/domain/model/invoice"

	"github.com/shopspring/decimal"
)

// Error is the JSON error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddLineItemRequest is the body of POST /api/v1/line-items.
type AddLineItemRequest struct {
	PersonID int64 `json:"personId"`
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

// UpdateLineItemRequest is the body of PUT /api/v1/line-items/:lineItemId.
type UpdateLineItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateInvoiceRequest is the body of PUT /api/v1/invoices/:invoiceId.
// A null address keeps the invoice's current address.
type UpdateInvoiceRequest struct {
	Country string  `json:"country"`
	Address *string `json:"address"`
}

// PaymentRequest is the body of POST /api/v1/invoices/:invoiceId/payment.
type PaymentRequest struct {
	PaymentInfo string `json:"paymentInfo"`
}

// ShipmentRequest is the body of POST /api/v1/invoices/:invoiceId/shipment.
type ShipmentRequest struct {
	ShipInfo string `json:"shipInfo"`
}

// Item is a catalog item response.
type Item struct {
	ID     int64            `json:"id"`
	Name   string           `json:"name"`
	Price  decimal.Decimal  `json:"price"`
	Weight *decimal.Decimal `json:"weight"`
}

// Address is a person's address response.
type Address struct {
	ID       int64  `json:"id"`
	PersonID int64  `json:"personId"`
	Country  string `json:"country"`
	Address  string `json:"address"`
}

// LineItem is an invoice line response.
type LineItem struct {
	ID        int64           `json:"id"`
	InvoiceID int64           `json:"invoiceId"`
	ItemID    int64           `json:"itemId"`
	ItemName  string          `json:"itemName,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Invoice is the invoice response shape shared by read and write endpoints.
// PersonName is only populated on the read side, where views join the
// person directory.
type Invoice struct {
	ID          int64           `json:"id"`
	PersonID    int64           `json:"personId"`
	PersonName  string          `json:"personName,omitempty"`
	OrderDate   time.Time       `json:"orderDate"`
	PaymentDate *time.Time      `json:"paymentDate"`
	PaymentInfo *string         `json:"paymentInfo"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Shipping    decimal.Decimal `json:"shipping"`
	Total       decimal.Decimal `json:"total"`
	Country     string          `json:"country"`
	Address     *string         `json:"address"`
	ShipDate    *time.Time      `json:"shipDate"`
	ShipInfo    *string         `json:"shipInfo"`
	Status      string          `json:"status"`
	LineItems   []LineItem      `json:"lineItems"`
}

func itemFromView(view queries.ItemView) Item {
	return Item{
		ID:     view.ID,
		Name:   view.Name,
		Price:  view.Price,
		Weight: view.Weight,
	}
}

func addressFromView(view queries.AddressView) Address {
	return Address{
		ID:       view.ID,
		PersonID: view.PersonID,
		Country:  view.Country,
		Address:  view.Address,
	}
}

func lineItemFromView(view queries.LineItemView) LineItem {
	return LineItem{
		ID:        view.ID,
		InvoiceID: view.InvoiceID,
		ItemID:    view.ItemID,
		ItemName:  view.ItemName,
		Quantity:  view.Quantity,
		Price:     view.Price,
	}
}

func invoiceFromView(view queries.InvoiceView) Invoice {
	lineItems := make([]LineItem, len(view.LineItems))
	for i, li := range view.LineItems {
		lineItems[i] = lineItemFromView(li)
	}

	return Invoice{
		ID:          view.ID,
		PersonID:    view.PersonID,
		PersonName:  view.PersonName,
		OrderDate:   view.OrderDate,
		PaymentDate: view.PaymentDate,
		PaymentInfo: view.PaymentInfo,
		Subtotal:    view.Subtotal,
		Shipping:    view.Shipping,
		Total:       view.Total,
		Country:     view.Country,
		Address:     view.Address,
		ShipDate:    view.ShipDate,
		ShipInfo:    view.ShipInfo,
		Status:      view.Status,
		LineItems:   lineItems,
	}
}

func lineItemFromAggregate(li *invoice.LineItem) LineItem {
	return LineItem{
		ID:        li.ID(),
		InvoiceID: li.InvoiceID(),
		ItemID:    li.ItemID(),
		Quantity:  li.Quantity(),
		Price:     li.Price(),
	}
}

func invoiceFromAggregate(inv *invoice.Invoice) Invoice {
	lineItems := make([]LineItem, len(inv.LineItems()))
	for i, li := range inv.LineItems() {
		lineItems[i] = lineItemFromAggregate(li)
	}

	return Invoice{
		ID:          inv.ID(),
		PersonID:    inv.PersonID(),
		OrderDate:   inv.OrderDate(),
		PaymentDate: inv.PaymentDate(),
		PaymentInfo: inv.PaymentInfo(),
		Subtotal:    inv.Subtotal(),
		Shipping:    inv.Shipping(),
		Total:       inv.Total(),
		Country:     inv.Country().Code(),
		Address:     inv.Address(),
		ShipDate:    inv.ShipDate(),
		ShipInfo:    inv.ShipInfo(),
		Status:      inv.Status().String(),
		LineItems:   lineItems,
	}
}
