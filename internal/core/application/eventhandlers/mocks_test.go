package eventhandlers_test

import (
	"context"
	"testing"
	"time"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/manufacturing"
	"ordermanagement/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCustomerOrderRepository struct{ mock.Mock }

func (m *MockCustomerOrderRepository) Add(ctx context.Context, aggregate *customerorder.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomerOrderRepository) Update(ctx context.Context, aggregate *customerorder.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomerOrderRepository) Get(ctx context.Context, id kernel.UUID) (*customerorder.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customerorder.Order), args.Error(1)
}

func (m *MockCustomerOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerOrderRepository) FindByCustomerID(
	ctx context.Context, customerID kernel.UUID,
) ([]*customerorder.Order, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]*customerorder.Order), args.Error(1)
}

func (m *MockCustomerOrderRepository) FindByStatus(
	ctx context.Context, status customerorder.Status,
) ([]*customerorder.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*customerorder.Order), args.Error(1)
}

func (m *MockCustomerOrderRepository) FindByManufacturingOrderID(
	ctx context.Context, manufacturingOrderID kernel.UUID,
) ([]*customerorder.Order, error) {
	args := m.Called(ctx, manufacturingOrderID)
	return args.Get(0).([]*customerorder.Order), args.Error(1)
}

func (m *MockCustomerOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockManufacturingOrderRepository struct{ mock.Mock }

func (m *MockManufacturingOrderRepository) Add(ctx context.Context, aggregate *manufacturing.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockManufacturingOrderRepository) Update(ctx context.Context, aggregate *manufacturing.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockManufacturingOrderRepository) Get(ctx context.Context, id kernel.UUID) (*manufacturing.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manufacturing.Order), args.Error(1)
}

func (m *MockManufacturingOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockManufacturingOrderRepository) FindByStatus(
	ctx context.Context, status manufacturing.Status,
) ([]*manufacturing.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*manufacturing.Order), args.Error(1)
}

func (m *MockManufacturingOrderRepository) FindOverdue(ctx context.Context) ([]*manufacturing.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*manufacturing.Order), args.Error(1)
}

func (m *MockManufacturingOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerOrderUoW struct{ mock.Mock }

func (m *MockCustomerOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomerOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomerOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomerOrderUoW) CustomerOrderRepository() ports.CustomerOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerOrderRepository)
}

func (m *MockCustomerOrderUoW) PullEvents() []kernel.DomainEvent {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]kernel.DomainEvent)
}

type MockCustomerOrderUoWFactory struct{ mock.Mock }

func (m *MockCustomerOrderUoWFactory) Create() commands.CustomerOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerOrderUoW)
}

type MockManufacturingOrderUoW struct{ mock.Mock }

func (m *MockManufacturingOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockManufacturingOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockManufacturingOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockManufacturingOrderUoW) ManufacturingOrderRepository() ports.ManufacturingOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ManufacturingOrderRepository)
}

func (m *MockManufacturingOrderUoW) PullEvents() []kernel.DomainEvent {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]kernel.DomainEvent)
}

type MockManufacturingOrderUoWFactory struct{ mock.Mock }

func (m *MockManufacturingOrderUoWFactory) Create() commands.ManufacturingOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.ManufacturingOrderUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// Domain fixtures shared by the handler tests.

func testCustomerOrder(t *testing.T) *customerorder.Order {
	t.Helper()
	info, err := customerorder.NewCustomerInfo(kernel.NewUUID(), "Jane Doe", "jane@example.com", "1 Main St")
	require.NoError(t, err)

	currency, err := kernel.NewCurrency("USD")
	require.NoError(t, err)
	price, err := kernel.NewMoneyFromString("150.00", currency)
	require.NoError(t, err)
	item, err := customerorder.NewOrderItem("WIDGET-1", "Industrial widget", 5, price)
	require.NoError(t, err)

	order, err := customerorder.PlaceOrder(kernel.NewUUID(), info, []customerorder.OrderItem{item})
	require.NoError(t, err)
	order.PullEvents()
	return order
}

// linkedCustomerOrder returns a customer order in MANUFACTURING_IN_PROGRESS
// linked to the given manufacturing order.
func linkedCustomerOrder(t *testing.T, manufacturingOrderID kernel.UUID) *customerorder.Order {
	t.Helper()
	order := testCustomerOrder(t)
	order.Confirm()
	require.NoError(t, order.LinkManufacturingOrder(manufacturingOrderID))
	order.NotifyManufacturingStarted()
	order.PullEvents()
	return order
}

func testManufacturingOrder(t *testing.T, id kernel.UUID) *manufacturing.Order {
	t.Helper()
	spec, err := manufacturing.NewProductSpecification("WIDGET-1", "Industrial widget", 1, "steel")
	require.NoError(t, err)

	start := time.Now().Add(24 * time.Hour)
	timeline, err := manufacturing.NewTimeline(start, start.Add(6*24*time.Hour))
	require.NoError(t, err)

	order, err := manufacturing.NewOrder(id, spec, timeline)
	require.NoError(t, err)
	order.PullEvents()
	return order
}
