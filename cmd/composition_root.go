package cmd

import (
	"store/internal/adapters/out/postgres"
	"store/internal/core/application/usecases/commands"
	"store/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) invoiceUoWFactory() commands.InvoiceUoWFactory {
	return FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddLineItemCommandHandler() commands.AddLineItemCommandHandler {
	var f commands.LineItemUoWFactory = FuncLineItemUoWFactory(func() commands.LineItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddLineItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateLineItemCommandHandler() commands.UpdateLineItemCommandHandler {
	return commands.NewUpdateLineItemCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateDeleteLineItemCommandHandler() commands.DeleteLineItemCommandHandler {
	return commands.NewDeleteLineItemCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateUpdateInvoiceCommandHandler() commands.UpdateInvoiceCommandHandler {
	return commands.NewUpdateInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateDeleteInvoiceCommandHandler() commands.DeleteInvoiceCommandHandler {
	return commands.NewDeleteInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateMarkInvoicePaidCommandHandler() commands.MarkInvoicePaidCommandHandler {
	return commands.NewMarkInvoicePaidCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateMarkInvoiceShippedCommandHandler() commands.MarkInvoiceShippedCommandHandler {
	return commands.NewMarkInvoiceShippedCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateGetItemsQueryHandler() queries.GetItemsQueryHandler {
	return queries.NewGetItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoicesQueryHandler() queries.GetInvoicesQueryHandler {
	return queries.NewGetInvoicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoicesForPersonQueryHandler() queries.GetInvoicesForPersonQueryHandler {
	return queries.NewGetInvoicesForPersonQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoiceQueryHandler() queries.GetInvoiceQueryHandler {
	return queries.NewGetInvoiceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnshippedInvoicesQueryHandler() queries.GetUnshippedInvoicesQueryHandler {
	return queries.NewGetUnshippedInvoicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAddressesQueryHandler() queries.GetAddressesQueryHandler {
	return queries.NewGetAddressesQueryHandler(c.gormDB)
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncLineItemUoWFactory func() commands.LineItemUoW

func (f FuncLineItemUoWFactory) Create() commands.LineItemUoW {
	return f()
}
