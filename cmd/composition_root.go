package cmd

import (
	"log/slog"

	httpin "ordermanagement/internal/adapters/in/http"
	"ordermanagement/internal/adapters/out/eventbus"
	"ordermanagement/internal/adapters/out/postgres"
	"ordermanagement/internal/core/application/eventhandlers"
	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/core/domain/model/manufacturing"
	"ordermanagement/internal/core/domain/services"
	"ordermanagement/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	eventBus   *eventbus.InMemoryEventBus
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		eventBus:   eventbus.NewInMemoryEventBus(logger),
	}
}

// SubscribeEventHandlers wires the correlation listeners onto the event bus.
// Must be called once before the application starts serving requests.
func (c *CompositionRoot) SubscribeEventHandlers() {
	c.eventBus.Subscribe(manufacturing.OrderCreatedEventType,
		eventhandlers.NewLinkCustomerOrderHandler(c.customerOrderUoWFactory(), c.eventBus))
	c.eventBus.Subscribe(manufacturing.OrderStatusChangedEventType,
		eventhandlers.NewSyncCustomerOrdersHandler(c.customerOrderUoWFactory(), c.eventBus))
	c.eventBus.Subscribe(manufacturing.OrderCompletedEventType,
		eventhandlers.NewCompleteCustomerOrdersHandler(c.customerOrderUoWFactory(), c.eventBus))
	c.eventBus.Subscribe(customerorder.OrderCancelledEventType,
		eventhandlers.NewCancelManufacturingOrderHandler(c.manufacturingOrderUoWFactory(), c.eventBus))

	if c.config.AutoCreateManufacturingOrders {
		c.eventBus.Subscribe(customerorder.OrderStatusUpdatedEventType,
			eventhandlers.NewAutoCreateManufacturingOrderHandler(c.manufacturingOrderUoWFactory(), c.eventBus))
	}
}

func (c *CompositionRoot) CreatePlaceCustomerOrderCommandHandler() commands.PlaceCustomerOrderCommandHandler {
	return commands.NewPlaceCustomerOrderCommandHandler(c.customerOrderUoWFactory(), c.eventBus)
}

func (c *CompositionRoot) CreateConfirmCustomerOrderCommandHandler() commands.ConfirmCustomerOrderCommandHandler {
	return commands.NewConfirmCustomerOrderCommandHandler(c.customerOrderUoWFactory(), c.eventBus)
}

func (c *CompositionRoot) CreateUpdateCustomerOrderStatusCommandHandler() commands.UpdateCustomerOrderStatusCommandHandler {
	return commands.NewUpdateCustomerOrderStatusCommandHandler(c.customerOrderUoWFactory(), c.eventBus)
}

func (c *CompositionRoot) CreateCancelCustomerOrderCommandHandler() commands.CancelCustomerOrderCommandHandler {
	return commands.NewCancelCustomerOrderCommandHandler(c.customerOrderUoWFactory(), c.eventBus)
}

func (c *CompositionRoot) CreateLinkManufacturingOrderCommandHandler() commands.LinkManufacturingOrderCommandHandler {
	return commands.NewLinkManufacturingOrderCommandHandler(c.customerOrderUoWFactory())
}

func (c *CompositionRoot) CreateCreateManufacturingOrderCommandHandler() commands.CreateManufacturingOrderCommandHandler {
	return commands.NewCreateManufacturingOrderCommandHandler(
		c.manufacturingOrderUoWFactory(), c.eventBus, services.NewProductionScheduler())
}

func (c *CompositionRoot) CreateChangeManufacturingOrderStatusCommandHandler() commands.ChangeManufacturingOrderStatusCommandHandler {
	return commands.NewChangeManufacturingOrderStatusCommandHandler(c.manufacturingOrderUoWFactory(), c.eventBus)
}

func (c *CompositionRoot) CreateCompleteManufacturingOrderCommandHandler() commands.CompleteManufacturingOrderCommandHandler {
	return commands.NewCompleteManufacturingOrderCommandHandler(c.manufacturingOrderUoWFactory(), c.eventBus)
}

func (c *CompositionRoot) CreateCancelManufacturingOrderCommandHandler() commands.CancelManufacturingOrderCommandHandler {
	return commands.NewCancelManufacturingOrderCommandHandler(c.manufacturingOrderUoWFactory(), c.eventBus)
}

func (c *CompositionRoot) CreateDeleteManufacturingOrderCommandHandler() commands.DeleteManufacturingOrderCommandHandler {
	return commands.NewDeleteManufacturingOrderCommandHandler(c.manufacturingOrderUoWFactory())
}

func (c *CompositionRoot) CreateGetCustomerOrderQueryHandler() queries.GetCustomerOrderQueryHandler {
	return queries.NewGetCustomerOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersByStatusQueryHandler() queries.GetCustomerOrdersByStatusQueryHandler {
	return queries.NewGetCustomerOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersByManufacturingOrderQueryHandler() queries.GetCustomerOrdersByManufacturingOrderQueryHandler {
	return queries.NewGetCustomerOrdersByManufacturingOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetManufacturingOrderQueryHandler() queries.GetManufacturingOrderQueryHandler {
	return queries.NewGetManufacturingOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetManufacturingOrdersByStatusQueryHandler() queries.GetManufacturingOrdersByStatusQueryHandler {
	return queries.NewGetManufacturingOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueManufacturingOrdersQueryHandler() queries.GetOverdueManufacturingOrdersQueryHandler {
	return queries.NewGetOverdueManufacturingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreatePlaceCustomerOrderCommandHandler(),
		c.CreateConfirmCustomerOrderCommandHandler(),
		c.CreateUpdateCustomerOrderStatusCommandHandler(),
		c.CreateCancelCustomerOrderCommandHandler(),
		c.CreateLinkManufacturingOrderCommandHandler(),
		c.CreateCreateManufacturingOrderCommandHandler(),
		c.CreateChangeManufacturingOrderStatusCommandHandler(),
		c.CreateCompleteManufacturingOrderCommandHandler(),
		c.CreateCancelManufacturingOrderCommandHandler(),
		c.CreateDeleteManufacturingOrderCommandHandler(),
		c.CreateGetCustomerOrderQueryHandler(),
		c.CreateGetCustomerOrdersByStatusQueryHandler(),
		c.CreateGetCustomerOrdersByManufacturingOrderQueryHandler(),
		c.CreateGetManufacturingOrderQueryHandler(),
		c.CreateGetManufacturingOrdersByStatusQueryHandler(),
		c.CreateGetOverdueManufacturingOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOverdueManufacturingOrdersQueryHandler(), logger)
}

func (c *CompositionRoot) customerOrderUoWFactory() commands.CustomerOrderUoWFactory {
	return FuncCustomerOrderUoWFactory(func() commands.CustomerOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) manufacturingOrderUoWFactory() commands.ManufacturingOrderUoWFactory {
	return FuncManufacturingOrderUoWFactory(func() commands.ManufacturingOrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncCustomerOrderUoWFactory func() commands.CustomerOrderUoW

func (f FuncCustomerOrderUoWFactory) Create() commands.CustomerOrderUoW {
	return f()
}

type FuncManufacturingOrderUoWFactory func() commands.ManufacturingOrderUoW

func (f FuncManufacturingOrderUoWFactory) Create() commands.ManufacturingOrderUoW {
	return f()
}
