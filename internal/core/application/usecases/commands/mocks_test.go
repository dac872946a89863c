package commands_test

import (
	"context"
	"testing"
	"time"

	"store/internal/core/application/usecases/commands"
	"store/internal/core/domain/model/invoice"
	"store/internal/core/domain/model/item"
	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/person"
	"store/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) (*invoice.Invoice, error) {
	args := m.Called(ctx, aggregate)
	inv, _ := args.Get(0).(*invoice.Invoice)
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) (*invoice.Invoice, error) {
	args := m.Called(ctx, aggregate)
	inv, _ := args.Get(0).(*invoice.Invoice)
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) Get(ctx context.Context, id int64) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(*invoice.Invoice)
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) GetForUpdate(ctx context.Context, id int64) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(*invoice.Invoice)
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) GetByLineItemForUpdate(ctx context.Context, lineItemID int64) (*invoice.Invoice, error) {
	args := m.Called(ctx, lineItemID)
	inv, _ := args.Get(0).(*invoice.Invoice)
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) GetCartForUpdate(ctx context.Context, personID int64) (*invoice.Invoice, error) {
	args := m.Called(ctx, personID)
	inv, _ := args.Get(0).(*invoice.Invoice)
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Get(ctx context.Context, id int64) (*item.Item, error) {
	args := m.Called(ctx, id)
	it, _ := args.Get(0).(*item.Item)
	return it, args.Error(1)
}

type MockPersonRepository struct{ mock.Mock }

func (m *MockPersonRepository) Get(ctx context.Context, id int64) (*person.Person, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*person.Person)
	return p, args.Error(1)
}

func (m *MockPersonRepository) GetPrimaryAddress(ctx context.Context, personID int64) (*person.Address, error) {
	args := m.Called(ctx, personID)
	a, _ := args.Get(0).(*person.Address)
	return a, args.Error(1)
}

// MockUoW satisfies every command unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

func (m *MockUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

func (m *MockUoW) PersonRepository() ports.PersonRepository {
	args := m.Called()
	return args.Get(0).(ports.PersonRepository)
}

type MockInvoiceUoWFactory struct{ mock.Mock }

func (m *MockInvoiceUoWFactory) Create() commands.InvoiceUoW {
	args := m.Called()
	return args.Get(0).(commands.InvoiceUoW)
}

type MockLineItemUoWFactory struct{ mock.Mock }

func (m *MockLineItemUoWFactory) Create() commands.LineItemUoW {
	args := m.Called()
	return args.Get(0).(commands.LineItemUoW)
}

// Test fixtures.

func testCountry(t *testing.T, code string) kernel.Country {
	t.Helper()
	country, err := kernel.NewCountry(code)
	require.NoError(t, err)
	return country
}

func testItem(t *testing.T, id int64) *item.Item {
	t.Helper()
	weight := decimal.RequireFromString("0.5")
	it, err := item.RestoreItem(id, "widget", decimal.RequireFromString("10.50"), &weight)
	require.NoError(t, err)
	return it
}

func testInvoice(t *testing.T, id int64, lineItems []*invoice.LineItem) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.RestoreInvoice(id, 7, time.Now(), nil, nil,
		decimal.Zero, decimal.Zero, decimal.Zero,
		testCountry(t, "US"), nil, nil, nil, lineItems)
	require.NoError(t, err)
	return inv
}

func testShippedInvoice(t *testing.T, id int64) *invoice.Invoice {
	t.Helper()
	paidAt := time.Now()
	shippedAt := paidAt.Add(time.Hour)
	paymentInfo := "txn-001"
	shipInfo := "tracking-42"
	inv, err := invoice.RestoreInvoice(id, 7, paidAt, &paidAt, &paymentInfo,
		decimal.Zero, decimal.Zero, decimal.Zero,
		testCountry(t, "US"), nil, &shippedAt, &shipInfo, nil)
	require.NoError(t, err)
	return inv
}

func testLineItem(t *testing.T, id, invoiceID, itemID int64, quantity int) *invoice.LineItem {
	t.Helper()
	li, err := invoice.RestoreLineItem(id, invoiceID, itemID, quantity,
		decimal.RequireFromString("21"),
		decimal.RequireFromString("10.50"),
		decimal.RequireFromString("0.5"))
	require.NoError(t, err)
	return li
}
