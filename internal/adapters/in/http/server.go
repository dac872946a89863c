// Package http exposes the order engine over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"store/internal/core/application/usecases/commands"
	"store/internal/core/application/usecases/queries"
	"store/internal/core/domain/model/invoice"
	"store/internal/core/domain/model/kernel"
	"store/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server holds the command and query handlers behind the REST routes.
type Server struct {
	// Command handlers
	addLineItemHandler        commands.AddLineItemCommandHandler
	updateLineItemHandler     commands.UpdateLineItemCommandHandler
	deleteLineItemHandler     commands.DeleteLineItemCommandHandler
	updateInvoiceHandler      commands.UpdateInvoiceCommandHandler
	deleteInvoiceHandler      commands.DeleteInvoiceCommandHandler
	markInvoicePaidHandler    commands.MarkInvoicePaidCommandHandler
	markInvoiceShippedHandler commands.MarkInvoiceShippedCommandHandler

	// Query handlers
	getItemsHandler             queries.GetItemsQueryHandler
	getInvoicesHandler          queries.GetInvoicesQueryHandler
	getInvoicesForPersonHandler queries.GetInvoicesForPersonQueryHandler
	getInvoiceHandler           queries.GetInvoiceQueryHandler
	getCartHandler              queries.GetCartQueryHandler
	getUnshippedInvoicesHandler queries.GetUnshippedInvoicesQueryHandler
	getAddressesHandler         queries.GetAddressesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addLineItemHandler commands.AddLineItemCommandHandler,
	updateLineItemHandler commands.UpdateLineItemCommandHandler,
	deleteLineItemHandler commands.DeleteLineItemCommandHandler,
	updateInvoiceHandler commands.UpdateInvoiceCommandHandler,
	deleteInvoiceHandler commands.DeleteInvoiceCommandHandler,
	markInvoicePaidHandler commands.MarkInvoicePaidCommandHandler,
	markInvoiceShippedHandler commands.MarkInvoiceShippedCommandHandler,
	getItemsHandler queries.GetItemsQueryHandler,
	getInvoicesHandler queries.GetInvoicesQueryHandler,
	getInvoicesForPersonHandler queries.GetInvoicesForPersonQueryHandler,
	getInvoiceHandler queries.GetInvoiceQueryHandler,
	getCartHandler queries.GetCartQueryHandler,
	getUnshippedInvoicesHandler queries.GetUnshippedInvoicesQueryHandler,
	getAddressesHandler queries.GetAddressesQueryHandler,
) *Server {
	return &Server{
		addLineItemHandler:          addLineItemHandler,
		updateLineItemHandler:       updateLineItemHandler,
		deleteLineItemHandler:       deleteLineItemHandler,
		updateInvoiceHandler:        updateInvoiceHandler,
		deleteInvoiceHandler:        deleteInvoiceHandler,
		markInvoicePaidHandler:      markInvoicePaidHandler,
		markInvoiceShippedHandler:   markInvoiceShippedHandler,
		getItemsHandler:             getItemsHandler,
		getInvoicesHandler:          getInvoicesHandler,
		getInvoicesForPersonHandler: getInvoicesForPersonHandler,
		getInvoiceHandler:           getInvoiceHandler,
		getCartHandler:              getCartHandler,
		getUnshippedInvoicesHandler: getUnshippedInvoicesHandler,
		getAddressesHandler:         getAddressesHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/items", s.GetItems)

	api.GET("/invoices", s.GetInvoices)
	api.GET("/invoices/unshipped", s.GetUnshippedInvoices)
	api.GET("/invoices/:invoiceId", s.GetInvoice)
	api.PUT("/invoices/:invoiceId", s.UpdateInvoice)
	api.DELETE("/invoices/:invoiceId", s.DeleteInvoice)
	api.POST("/invoices/:invoiceId/payment", s.MarkInvoicePaid)
	api.POST("/invoices/:invoiceId/shipment", s.MarkInvoiceShipped)

	api.GET("/persons/:personId/invoices", s.GetInvoicesForPerson)
	api.GET("/persons/:personId/cart", s.GetCart)
	api.GET("/persons/:personId/addresses", s.GetAddresses)

	api.POST("/line-items", s.AddLineItem)
	api.PUT("/line-items/:lineItemId", s.UpdateLineItem)
	api.DELETE("/line-items/:lineItemId", s.DeleteLineItem)
}

// GetItems handles GET /api/v1/items - retrieves the catalog ordered by name.
func (s *Server) GetItems(ctx echo.Context) error {
	items, err := s.getItemsHandler.Handle(ctx.Request().Context(), queries.NewGetItemsQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]Item, len(items))
	for i, it := range items {
		response[i] = itemFromView(it)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetInvoices handles GET /api/v1/invoices - retrieves all invoices.
func (s *Server) GetInvoices(ctx echo.Context) error {
	invoices, err := s.getInvoicesHandler.Handle(ctx.Request().Context(), queries.NewGetInvoicesQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoicesFromViews(invoices))
}

// GetUnshippedInvoices handles GET /api/v1/invoices/unshipped - retrieves
// paid invoices awaiting shipment, oldest payment first.
func (s *Server) GetUnshippedInvoices(ctx echo.Context) error {
	invoices, err := s.getUnshippedInvoicesHandler.Handle(
		ctx.Request().Context(), queries.NewGetUnshippedInvoicesQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoicesFromViews(invoices))
}

// GetInvoice handles GET /api/v1/invoices/:invoiceId - retrieves one invoice.
func (s *Server) GetInvoice(ctx echo.Context) error {
	invoiceID, err := parseID(ctx, "invoiceId")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetInvoiceQuery(invoiceID)
	if err != nil {
		return badRequest(ctx, err)
	}

	view, err := s.getInvoiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoiceFromView(*view))
}

// UpdateInvoice handles PUT /api/v1/invoices/:invoiceId - changes the
// destination country and optionally the address.
func (s *Server) UpdateInvoice(ctx echo.Context) error {
	invoiceID, err := parseID(ctx, "invoiceId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var request UpdateInvoiceRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewUpdateInvoiceCommand(invoiceID, request.Country, request.Address)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.updateInvoiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoiceFromAggregate(updated))
}

// DeleteInvoice handles DELETE /api/v1/invoices/:invoiceId - removes an
// invoice with its line items and returns the deleted state.
func (s *Server) DeleteInvoice(ctx echo.Context) error {
	invoiceID, err := parseID(ctx, "invoiceId")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteInvoiceCommand(invoiceID)
	if err != nil {
		return badRequest(ctx, err)
	}

	deleted, err := s.deleteInvoiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoiceFromAggregate(deleted))
}

// MarkInvoicePaid handles POST /api/v1/invoices/:invoiceId/payment.
func (s *Server) MarkInvoicePaid(ctx echo.Context) error {
	invoiceID, err := parseID(ctx, "invoiceId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var request PaymentRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewMarkInvoicePaidCommand(invoiceID, request.PaymentInfo)
	if err != nil {
		return badRequest(ctx, err)
	}

	paid, err := s.markInvoicePaidHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoiceFromAggregate(paid))
}

// MarkInvoiceShipped handles POST /api/v1/invoices/:invoiceId/shipment.
func (s *Server) MarkInvoiceShipped(ctx echo.Context) error {
	invoiceID, err := parseID(ctx, "invoiceId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var request ShipmentRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewMarkInvoiceShippedCommand(invoiceID, request.ShipInfo)
	if err != nil {
		return badRequest(ctx, err)
	}

	shipped, err := s.markInvoiceShippedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoiceFromAggregate(shipped))
}

// GetInvoicesForPerson handles GET /api/v1/persons/:personId/invoices.
func (s *Server) GetInvoicesForPerson(ctx echo.Context) error {
	personID, err := parseID(ctx, "personId")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetInvoicesForPersonQuery(personID)
	if err != nil {
		return badRequest(ctx, err)
	}

	invoices, err := s.getInvoicesForPersonHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoicesFromViews(invoices))
}

// GetCart handles GET /api/v1/persons/:personId/cart - retrieves the
// person's unpaid invoice. Reading never creates a cart.
func (s *Server) GetCart(ctx echo.Context) error {
	personID, err := parseID(ctx, "personId")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetCartQuery(personID)
	if err != nil {
		return badRequest(ctx, err)
	}

	view, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoiceFromView(*view))
}

// GetAddresses handles GET /api/v1/persons/:personId/addresses.
func (s *Server) GetAddresses(ctx echo.Context) error {
	personID, err := parseID(ctx, "personId")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetAddressesQuery(personID)
	if err != nil {
		return badRequest(ctx, err)
	}

	addresses, err := s.getAddressesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]Address, len(addresses))
	for i, addr := range addresses {
		response[i] = addressFromView(addr)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddLineItem handles POST /api/v1/line-items - adds an item to the
// person's cart, creating the cart if the person has none.
func (s *Server) AddLineItem(ctx echo.Context) error {
	var request AddLineItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewAddLineItemCommand(request.PersonID, request.ItemID, request.Quantity)
	if err != nil {
		return badRequest(ctx, err)
	}

	lineItem, err := s.addLineItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, lineItemFromAggregate(lineItem))
}

// UpdateLineItem handles PUT /api/v1/line-items/:lineItemId - changes a
// line's quantity. Quantity zero removes the line; an unknown id is a no-op.
// Both no-result cases respond with a null body.
func (s *Server) UpdateLineItem(ctx echo.Context) error {
	lineItemID, err := parseID(ctx, "lineItemId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var request UpdateLineItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewUpdateLineItemCommand(lineItemID, request.Quantity)
	if err != nil {
		return badRequest(ctx, err)
	}

	lineItem, err := s.updateLineItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}
	if lineItem == nil {
		return ctx.JSON(http.StatusOK, nil)
	}

	return ctx.JSON(http.StatusOK, lineItemFromAggregate(lineItem))
}

// DeleteLineItem handles DELETE /api/v1/line-items/:lineItemId - removes a
// line from its invoice and returns it as it stood before deletion. An
// unknown id is a no-op and responds with a null body.
func (s *Server) DeleteLineItem(ctx echo.Context) error {
	lineItemID, err := parseID(ctx, "lineItemId")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteLineItemCommand(lineItemID)
	if err != nil {
		return badRequest(ctx, err)
	}

	lineItem, err := s.deleteLineItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}
	if lineItem == nil {
		return ctx.JSON(http.StatusOK, nil)
	}

	return ctx.JSON(http.StatusOK, lineItemFromAggregate(lineItem))
}

// renderError maps domain and application errors to HTTP status codes.
// Immutability violations are conflicts and carry their sentinel message so
// clients can distinguish paid-line-item locks from shipped-invoice locks.
func (s *Server) renderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, invoice.ErrLineItemLocked),
		errors.Is(err, invoice.ErrInvoiceLocked),
		errors.Is(err, invoice.ErrInvoiceAlreadyPaid),
		errors.Is(err, invoice.ErrDuplicateCart):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, invoice.ErrLineItemNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, kernel.ErrCountryNotAllowed),
		errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

func parseID(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New(name + " must be a positive integer")
	}
	return id, nil
}

func invoicesFromViews(views []queries.InvoiceView) []Invoice {
	response := make([]Invoice, len(views))
	for i, view := range views {
		response[i] = invoiceFromView(view)
	}
	return response
}
