package queries_test

import (
	"context"
	"testing"
	"time"

	"store/internal/adapters/out/postgres/invoicerepo"
	"store/internal/adapters/out/postgres/itemrepo"
	"store/internal/adapters/out/postgres/personrepo"
	"store/internal/core/application/usecases/queries"
	"store/internal/core/domain/model/invoice"
	"store/internal/core/domain/model/item"
	"store/internal/core/domain/model/kernel"
	"store/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InvoiceQueriesTestSuite exercises every invoice-shaped query handler
// against one PostgreSQL container, seeding data through the write-side
// repository so the views reflect what the domain actually persists.
type InvoiceQueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *InvoiceQueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&personrepo.PersonDTO{},
		&personrepo.AddressDTO{},
		&itemrepo.ItemDTO{},
		&invoicerepo.InvoiceDTO{},
		&invoicerepo.LineItemDTO{},
	))
}

func (suite *InvoiceQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *InvoiceQueriesTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE line_items, invoices, addresses, persons, items RESTART IDENTITY CASCADE",
	).Error)

	suite.Require().NoError(suite.db.Create(&personrepo.PersonDTO{ID: 1, Name: "Ada"}).Error)
	suite.Require().NoError(suite.db.Create(&personrepo.PersonDTO{ID: 2, Name: "Grace"}).Error)
}

func (suite *InvoiceQueriesTestSuite) seedItem(id int64, name, price, weight string) *item.Item {
	w := decimal.RequireFromString(weight)
	suite.Require().NoError(suite.db.Create(&itemrepo.ItemDTO{
		ID:     id,
		Name:   name,
		Price:  decimal.RequireFromString(price),
		Weight: &w,
	}).Error)

	it, err := item.RestoreItem(id, name, decimal.RequireFromString(price), &w)
	suite.Require().NoError(err)
	return it
}

func (suite *InvoiceQueriesTestSuite) repo() *invoicerepo.GormInvoiceRepository {
	return invoicerepo.NewGormInvoiceRepository(suite.db, &noopAggregateTracker{})
}

// seedCart creates an unpaid invoice for the person with the given items.
func (suite *InvoiceQueriesTestSuite) seedCart(personID int64, items ...*item.Item) *invoice.Invoice {
	country, err := kernel.NewCountry("US")
	suite.Require().NoError(err)

	cart, err := invoice.NewCart(personID, time.Now().UTC(), country, nil)
	suite.Require().NoError(err)

	stored, err := suite.repo().Add(context.Background(), cart)
	suite.Require().NoError(err)

	for _, it := range items {
		_, err = stored.AddItem(it, 1)
		suite.Require().NoError(err)
	}
	if len(items) > 0 {
		stored, err = suite.repo().Update(context.Background(), stored)
		suite.Require().NoError(err)
	}

	return stored
}

func (suite *InvoiceQueriesTestSuite) markPaid(inv *invoice.Invoice, at time.Time) *invoice.Invoice {
	suite.Require().NoError(inv.MarkPaid("txn", at))
	stored, err := suite.repo().Update(context.Background(), inv)
	suite.Require().NoError(err)
	return stored
}

func (suite *InvoiceQueriesTestSuite) markShipped(inv *invoice.Invoice) *invoice.Invoice {
	suite.Require().NoError(inv.MarkShipped("tracking", time.Now().UTC()))
	stored, err := suite.repo().Update(context.Background(), inv)
	suite.Require().NoError(err)
	return stored
}

func (suite *InvoiceQueriesTestSuite) TestGetInvoices_EmptyDatabase_ReturnsEmptySlice() {
	handler := queries.NewGetInvoicesQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetInvoicesQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *InvoiceQueriesTestSuite) TestGetInvoices_ReturnsAllWithLineItemsAndStatus() {
	widget := suite.seedItem(1, "widget", "10.50", "0.5")
	cart := suite.seedCart(1, widget)
	placed := suite.markPaid(suite.seedCart(2, widget), time.Now().UTC())

	handler := queries.NewGetInvoicesQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetInvoicesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(cart.ID(), result[0].ID)
	suite.Equal("Ada", result[0].PersonName)
	suite.Equal("Cart", result[0].Status)
	suite.Require().Len(result[0].LineItems, 1)
	suite.Equal("widget", result[0].LineItems[0].ItemName)
	suite.True(result[0].LineItems[0].Price.Equal(decimal.RequireFromString("10.50")))
	suite.True(result[0].Subtotal.Equal(cart.Subtotal()))
	suite.True(result[0].Total.Equal(cart.Total()))

	suite.Equal(placed.ID(), result[1].ID)
	suite.Equal("Grace", result[1].PersonName)
	suite.Equal("Placed", result[1].Status)
	suite.NotNil(result[1].PaymentDate)
}

func (suite *InvoiceQueriesTestSuite) TestGetInvoicesForPerson_FiltersByPerson() {
	widget := suite.seedItem(1, "widget", "10.50", "0.5")
	mine := suite.seedCart(1, widget)
	suite.seedCart(2, widget)

	handler := queries.NewGetInvoicesForPersonQueryHandler(suite.db)
	query, err := queries.NewGetInvoicesForPersonQuery(1)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(mine.ID(), result[0].ID)
	suite.Equal(int64(1), result[0].PersonID)
}

func (suite *InvoiceQueriesTestSuite) TestGetInvoicesForPerson_UnknownPerson_ReturnsEmptySlice() {
	handler := queries.NewGetInvoicesForPersonQueryHandler(suite.db)
	query, err := queries.NewGetInvoicesForPersonQuery(456)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *InvoiceQueriesTestSuite) TestGetInvoice_ExistingInvoice_ReturnsView() {
	widget := suite.seedItem(1, "widget", "10.50", "0.5")
	cart := suite.seedCart(1, widget)

	handler := queries.NewGetInvoiceQueryHandler(suite.db)
	query, err := queries.NewGetInvoiceQuery(cart.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(cart.ID(), result.ID)
	suite.Equal("US", result.Country)
	suite.Equal("Cart", result.Status)
	suite.Require().Len(result.LineItems, 1)
	suite.Equal("widget", result.LineItems[0].ItemName)
}

func (suite *InvoiceQueriesTestSuite) TestGetInvoice_NonExistent_ReturnsNotFoundError() {
	handler := queries.NewGetInvoiceQueryHandler(suite.db)
	query, err := queries.NewGetInvoiceQuery(456)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(result)
}

func (suite *InvoiceQueriesTestSuite) TestGetCart_ReturnsUnpaidInvoice() {
	widget := suite.seedItem(1, "widget", "10.50", "0.5")
	cart := suite.seedCart(1, widget)

	handler := queries.NewGetCartQueryHandler(suite.db)
	query, err := queries.NewGetCartQuery(1)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(cart.ID(), result.ID)
	suite.Equal("Cart", result.Status)
}

func (suite *InvoiceQueriesTestSuite) TestGetCart_OnlyPaidInvoices_ReturnsNotFoundError() {
	widget := suite.seedItem(1, "widget", "10.50", "0.5")
	suite.markPaid(suite.seedCart(1, widget), time.Now().UTC())

	handler := queries.NewGetCartQueryHandler(suite.db)
	query, err := queries.NewGetCartQuery(1)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(result)
}

func (suite *InvoiceQueriesTestSuite) TestGetUnshippedInvoices_ReturnsPaidUnshippedByPaymentDate() {
	widget := suite.seedItem(1, "widget", "10.50", "0.5")

	suite.seedCart(1, widget) // still a cart, excluded

	later := suite.markPaid(suite.seedCart(2, widget), time.Now().UTC())

	shipped := suite.markPaid(suite.seedCart(2, widget), time.Now().UTC().Add(-2*time.Hour))
	suite.markShipped(shipped) // shipped, excluded

	earlier := suite.markPaid(suite.seedCart(2, widget), time.Now().UTC().Add(-time.Hour))

	handler := queries.NewGetUnshippedInvoicesQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetUnshippedInvoicesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(earlier.ID(), result[0].ID)
	suite.Equal(later.ID(), result[1].ID)
}

func (suite *InvoiceQueriesTestSuite) TestGetAddresses_ReturnsPersonAddressesOrderedByID() {
	suite.Require().NoError(suite.db.Create(&personrepo.AddressDTO{
		ID: 2, PersonID: 1, Country: "DE", Address: "1 Unter den Linden",
	}).Error)
	suite.Require().NoError(suite.db.Create(&personrepo.AddressDTO{
		ID: 1, PersonID: 1, Country: "US", Address: "1 Main St",
	}).Error)
	suite.Require().NoError(suite.db.Create(&personrepo.AddressDTO{
		ID: 3, PersonID: 2, Country: "JP", Address: "1 Chiyoda",
	}).Error)

	handler := queries.NewGetAddressesQueryHandler(suite.db)
	query, err := queries.NewGetAddressesQuery(1)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(int64(1), result[0].ID)
	suite.Equal("US", result[0].Country)
	suite.Equal("1 Main St", result[0].Address)
	suite.Equal(int64(2), result[1].ID)
	suite.Equal("DE", result[1].Country)
}

func (suite *InvoiceQueriesTestSuite) TestGetAddresses_NoAddresses_ReturnsEmptySlice() {
	handler := queries.NewGetAddressesQueryHandler(suite.db)
	query, err := queries.NewGetAddressesQuery(1)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *InvoiceQueriesTestSuite) TestInvalidQueries_ReturnConstructorErrors() {
	ctx := context.Background()

	_, err := queries.NewGetInvoiceQueryHandler(suite.db).Handle(ctx, queries.GetInvoiceQuery{})
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetInvoiceQuery constructor")

	_, err = queries.NewGetCartQueryHandler(suite.db).Handle(ctx, queries.GetCartQuery{})
	suite.Require().Error(err)

	_, err = queries.NewGetAddressesQueryHandler(suite.db).Handle(ctx, queries.GetAddressesQuery{})
	suite.Require().Error(err)
}

func (suite *InvoiceQueriesTestSuite) TestQueryConstructors_RejectInvalidIDs() {
	_, err := queries.NewGetInvoicesForPersonQuery(0)
	suite.Require().ErrorIs(err, queries.ErrPersonIDIsInvalid)

	_, err = queries.NewGetCartQuery(-1)
	suite.Require().ErrorIs(err, queries.ErrPersonIDIsInvalid)

	_, err = queries.NewGetInvoiceQuery(0)
	suite.Require().ErrorIs(err, queries.ErrInvoiceIDIsInvalid)

	_, err = queries.NewGetAddressesQuery(0)
	suite.Require().ErrorIs(err, queries.ErrPersonIDIsInvalid)
}

func TestInvoiceQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceQueriesTestSuite))
}

// noopAggregateTracker satisfies the repository's tracker dependency.
// Query tests don't care about aggregate tracking.
type noopAggregateTracker struct{}

func (t *noopAggregateTracker) TrackAggregate(_ int64, _ any) {}
