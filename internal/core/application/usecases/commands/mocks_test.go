package commands_test

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

// Domain fixtures shared by the command tests.

func testCustomerInfo(t *testing.T) customerorder.CustomerInfo {
	t.Helper()
	info, err := customerorder.NewCustomerInfo(kernel.NewUUID(), "Jane Doe", "jane@example.com", "1 Main St")
	require.NoError(t, err)
	return info
}

func testItems(t *testing.T) []customerorder.OrderItem {
	t.Helper()
	currency, err := kernel.NewCurrency("USD")
	require.NoError(t, err)
	price, err := kernel.NewMoneyFromString("150.00", currency)
	require.NoError(t, err)
	item, err := customerorder.NewOrderItem("WIDGET-1", "Industrial widget", 5, price)
	require.NoError(t, err)
	return []customerorder.OrderItem{item}
}

func testCustomerOrder(t *testing.T) *customerorder.Order {
	t.Helper()
	order, err := customerorder.PlaceOrder(kernel.NewUUID(), testCustomerInfo(t), testItems(t))
	require.NoError(t, err)
	order.PullEvents()
	return order
}

func testProductSpec(t *testing.T) manufacturing.ProductSpecification {
	t.Helper()
	spec, err := manufacturing.NewProductSpecification("WIDGET-1", "Industrial widget", 1, "steel")
	require.NoError(t, err)
	return spec
}

func testTimeline(t *testing.T) manufacturing.Timeline {
	t.Helper()
	start := time.Now().Add(24 * time.Hour)
	timeline, err := manufacturing.NewTimeline(start, start.Add(6*24*time.Hour))
	require.NoError(t, err)
	return timeline
}

func testManufacturingOrder(t *testing.T) *manufacturing.Order {
	t.Helper()
	order, err := manufacturing.NewOrder(kernel.NewUUID(), testProductSpec(t), testTimeline(t))
	require.NoError(t, err)
	order.PullEvents()
	return order
}
