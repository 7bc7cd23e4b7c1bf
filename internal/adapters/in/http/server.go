// Package http exposes the command and query use cases over a REST API.
// The handlers translate between JSON DTOs and domain types; all business
// rules live in the application and domain layers.
package http

import (
	"errors"
	"net/http"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/manufacturing"
	"ordermanagement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeCustomerOrderHandler        commands.PlaceCustomerOrderCommandHandler
	confirmCustomerOrderHandler      commands.ConfirmCustomerOrderCommandHandler
	updateCustomerOrderStatusHandler commands.UpdateCustomerOrderStatusCommandHandler
	cancelCustomerOrderHandler       commands.CancelCustomerOrderCommandHandler
	linkManufacturingOrderHandler    commands.LinkManufacturingOrderCommandHandler

	createManufacturingOrderHandler       commands.CreateManufacturingOrderCommandHandler
	changeManufacturingOrderStatusHandler commands.ChangeManufacturingOrderStatusCommandHandler
	completeManufacturingOrderHandler     commands.CompleteManufacturingOrderCommandHandler
	cancelManufacturingOrderHandler       commands.CancelManufacturingOrderCommandHandler
	deleteManufacturingOrderHandler       commands.DeleteManufacturingOrderCommandHandler

	// Query handlers
	getCustomerOrderHandler        queries.GetCustomerOrderQueryHandler
	getCustomerOrdersByStatus      queries.GetCustomerOrdersByStatusQueryHandler
	getCustomerOrdersByManufOrder  queries.GetCustomerOrdersByManufacturingOrderQueryHandler
	getManufacturingOrderHandler   queries.GetManufacturingOrderQueryHandler
	getManufacturingOrdersByStatus queries.GetManufacturingOrdersByStatusQueryHandler
	getOverdueManufacturingHandler queries.GetOverdueManufacturingOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	placeCustomerOrderHandler commands.PlaceCustomerOrderCommandHandler,
	confirmCustomerOrderHandler commands.ConfirmCustomerOrderCommandHandler,
	updateCustomerOrderStatusHandler commands.UpdateCustomerOrderStatusCommandHandler,
	cancelCustomerOrderHandler commands.CancelCustomerOrderCommandHandler,
	linkManufacturingOrderHandler commands.LinkManufacturingOrderCommandHandler,
	createManufacturingOrderHandler commands.CreateManufacturingOrderCommandHandler,
	changeManufacturingOrderStatusHandler commands.ChangeManufacturingOrderStatusCommandHandler,
	completeManufacturingOrderHandler commands.CompleteManufacturingOrderCommandHandler,
	cancelManufacturingOrderHandler commands.CancelManufacturingOrderCommandHandler,
	deleteManufacturingOrderHandler commands.DeleteManufacturingOrderCommandHandler,
	getCustomerOrderHandler queries.GetCustomerOrderQueryHandler,
	getCustomerOrdersByStatus queries.GetCustomerOrdersByStatusQueryHandler,
	getCustomerOrdersByManufOrder queries.GetCustomerOrdersByManufacturingOrderQueryHandler,
	getManufacturingOrderHandler queries.GetManufacturingOrderQueryHandler,
	getManufacturingOrdersByStatus queries.GetManufacturingOrdersByStatusQueryHandler,
	getOverdueManufacturingHandler queries.GetOverdueManufacturingOrdersQueryHandler,
) *Server {
	return &Server{
		placeCustomerOrderHandler:             placeCustomerOrderHandler,
		confirmCustomerOrderHandler:           confirmCustomerOrderHandler,
		updateCustomerOrderStatusHandler:      updateCustomerOrderStatusHandler,
		cancelCustomerOrderHandler:            cancelCustomerOrderHandler,
		linkManufacturingOrderHandler:         linkManufacturingOrderHandler,
		createManufacturingOrderHandler:       createManufacturingOrderHandler,
		changeManufacturingOrderStatusHandler: changeManufacturingOrderStatusHandler,
		completeManufacturingOrderHandler:     completeManufacturingOrderHandler,
		cancelManufacturingOrderHandler:       cancelManufacturingOrderHandler,
		deleteManufacturingOrderHandler:       deleteManufacturingOrderHandler,
		getCustomerOrderHandler:               getCustomerOrderHandler,
		getCustomerOrdersByStatus:             getCustomerOrdersByStatus,
		getCustomerOrdersByManufOrder:         getCustomerOrdersByManufOrder,
		getManufacturingOrderHandler:          getManufacturingOrderHandler,
		getManufacturingOrdersByStatus:        getManufacturingOrdersByStatus,
		getOverdueManufacturingHandler:        getOverdueManufacturingHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/customer-orders", s.PlaceCustomerOrder)
	api.GET("/customer-orders", s.GetCustomerOrdersByStatus)
	api.GET("/customer-orders/:id", s.GetCustomerOrder)
	api.POST("/customer-orders/:id/confirm", s.ConfirmCustomerOrder)
	api.PUT("/customer-orders/:id/status", s.UpdateCustomerOrderStatus)
	api.POST("/customer-orders/:id/cancel", s.CancelCustomerOrder)
	api.POST("/customer-orders/:id/link", s.LinkManufacturingOrder)

	api.POST("/manufacturing-orders", s.CreateManufacturingOrder)
	api.GET("/manufacturing-orders", s.GetManufacturingOrdersByStatus)
	api.GET("/manufacturing-orders/overdue", s.GetOverdueManufacturingOrders)
	api.GET("/manufacturing-orders/:id", s.GetManufacturingOrder)
	api.GET("/manufacturing-orders/:id/customer-orders", s.GetCustomerOrdersByManufacturingOrder)
	api.PUT("/manufacturing-orders/:id/status", s.ChangeManufacturingOrderStatus)
	api.POST("/manufacturing-orders/:id/complete", s.CompleteManufacturingOrder)
	api.POST("/manufacturing-orders/:id/cancel", s.CancelManufacturingOrder)
	api.DELETE("/manufacturing-orders/:id", s.DeleteManufacturingOrder)
}

// PlaceCustomerOrder handles POST /api/v1/customer-orders.
func (s *Server) PlaceCustomerOrder(ctx echo.Context) error {
	var request PlaceCustomerOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.Customer.ID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	info, err := customerorder.NewCustomerInfo(
		customerID, request.Customer.Name, request.Customer.Email, request.Customer.Address)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	currency, err := kernel.NewCurrency(request.Currency)
	if err != nil {
		return badRequest(ctx, "Invalid currency: "+err.Error())
	}

	items := make([]customerorder.OrderItem, 0, len(request.Items))
	for _, itemRequest := range request.Items {
		unitPrice, priceErr := kernel.NewMoneyFromString(itemRequest.UnitPrice, currency)
		if priceErr != nil {
			return badRequest(ctx, "Invalid unit price: "+priceErr.Error())
		}

		item, itemErr := customerorder.NewOrderItem(
			itemRequest.ProductCode, itemRequest.Description, itemRequest.Quantity, unitPrice)
		if itemErr != nil {
			return badRequest(ctx, "Invalid order item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceCustomerOrderCommand(orderID, info, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.placeCustomerOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{ID: orderID.String()})
}

// ConfirmCustomerOrder handles POST /api/v1/customer-orders/:id/confirm.
func (s *Server) ConfirmCustomerOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmCustomerOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.confirmCustomerOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCustomerOrderStatus handles PUT /api/v1/customer-orders/:id/status.
func (s *Server) UpdateCustomerOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request UpdateStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := customerorder.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+request.Status)
	}

	cmd, err := commands.NewUpdateCustomerOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateCustomerOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelCustomerOrder handles POST /api/v1/customer-orders/:id/cancel.
func (s *Server) CancelCustomerOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request CancelOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelCustomerOrderCommand(orderID, request.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelCustomerOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LinkManufacturingOrder handles POST /api/v1/customer-orders/:id/link.
func (s *Server) LinkManufacturingOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request LinkManufacturingOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	manufacturingOrderID, err := kernel.UUIDFromString(request.ManufacturingOrderID)
	if err != nil {
		return badRequest(ctx, "Invalid manufacturing order id")
	}

	cmd, err := commands.NewLinkManufacturingOrderCommand(orderID, manufacturingOrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.linkManufacturingOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomerOrder handles GET /api/v1/customer-orders/:id.
func (s *Server) GetCustomerOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetCustomerOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	order, err := s.getCustomerOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerOrderResponse(order))
}

// GetCustomerOrdersByStatus handles GET /api/v1/customer-orders?status=X.
func (s *Server) GetCustomerOrdersByStatus(ctx echo.Context) error {
	status, err := customerorder.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Unknown status: "+ctx.QueryParam("status"))
	}

	query, err := queries.NewGetCustomerOrdersByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getCustomerOrdersByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerOrderResponses(orders))
}

// GetCustomerOrdersByManufacturingOrder handles
// GET /api/v1/manufacturing-orders/:id/customer-orders.
func (s *Server) GetCustomerOrdersByManufacturingOrder(ctx echo.Context) error {
	manufacturingOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid manufacturing order id")
	}

	query, err := queries.NewGetCustomerOrdersByManufacturingOrderQuery(manufacturingOrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getCustomerOrdersByManufOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerOrderResponses(orders))
}

// CreateManufacturingOrder handles POST /api/v1/manufacturing-orders.
func (s *Server) CreateManufacturingOrder(ctx echo.Context) error {
	var request CreateManufacturingOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	spec, err := manufacturing.NewProductSpecification(
		request.ProductCode, request.Description, request.Quantity, request.Specifications)
	if err != nil {
		return badRequest(ctx, "Invalid product specification: "+err.Error())
	}

	timeline, err := manufacturing.NewTimeline(request.ExpectedStart, request.ExpectedCompletion)
	if err != nil {
		return badRequest(ctx, "Invalid production window: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateManufacturingOrderCommand(orderID, spec, timeline)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createManufacturingOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{ID: orderID.String()})
}

// ChangeManufacturingOrderStatus handles PUT /api/v1/manufacturing-orders/:id/status.
func (s *Server) ChangeManufacturingOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request UpdateStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := manufacturing.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+request.Status)
	}

	cmd, err := commands.NewChangeManufacturingOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.changeManufacturingOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteManufacturingOrder handles POST /api/v1/manufacturing-orders/:id/complete.
func (s *Server) CompleteManufacturingOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteManufacturingOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.completeManufacturingOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelManufacturingOrder handles POST /api/v1/manufacturing-orders/:id/cancel.
func (s *Server) CancelManufacturingOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelManufacturingOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelManufacturingOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteManufacturingOrder handles DELETE /api/v1/manufacturing-orders/:id.
func (s *Server) DeleteManufacturingOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteManufacturingOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteManufacturingOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetManufacturingOrder handles GET /api/v1/manufacturing-orders/:id.
func (s *Server) GetManufacturingOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetManufacturingOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	order, err := s.getManufacturingOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toManufacturingOrderResponse(order))
}

// GetManufacturingOrdersByStatus handles GET /api/v1/manufacturing-orders?status=X.
func (s *Server) GetManufacturingOrdersByStatus(ctx echo.Context) error {
	status, err := manufacturing.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Unknown status: "+ctx.QueryParam("status"))
	}

	query, err := queries.NewGetManufacturingOrdersByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getManufacturingOrdersByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toManufacturingOrderResponses(orders))
}

// GetOverdueManufacturingOrders handles GET /api/v1/manufacturing-orders/overdue.
func (s *Server) GetOverdueManufacturingOrders(ctx echo.Context) error {
	query := queries.NewGetOverdueManufacturingOrdersQuery()

	orders, err := s.getOverdueManufacturingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toManufacturingOrderResponses(orders))
}

func toCustomerOrderResponse(order queries.CustomerOrderResponse) CustomerOrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductCode: item.ProductCode,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	response := CustomerOrderResponse{
		ID:              order.ID.String(),
		CustomerID:      order.CustomerID.String(),
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerAddress: order.CustomerAddress,
		Items:           items,
		TotalAmount:     order.TotalAmount,
		Currency:        order.Currency,
		Status:          order.Status,
		PlacedAt:        order.PlacedAt,
		UpdatedAt:       order.UpdatedAt,
	}

	if order.ManufacturingOrderID != nil {
		link := order.ManufacturingOrderID.String()
		response.ManufacturingOrderID = &link
	}

	return response
}

func toCustomerOrderResponses(orders []queries.CustomerOrderResponse) []CustomerOrderResponse {
	responses := make([]CustomerOrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toCustomerOrderResponse(order))
	}
	return responses
}

func toManufacturingOrderResponse(order queries.ManufacturingOrderResponse) ManufacturingOrderResponse {
	return ManufacturingOrderResponse{
		ID:                 order.ID.String(),
		ProductCode:        order.ProductCode,
		Description:        order.Description,
		Quantity:           order.Quantity,
		Specifications:     order.Specifications,
		Status:             order.Status,
		ExpectedStart:      order.ExpectedStart,
		ExpectedCompletion: order.ExpectedCompletion,
		ActualStart:        order.ActualStart,
		ActualCompletion:   order.ActualCompletion,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}

func toManufacturingOrderResponses(orders []queries.ManufacturingOrderResponse) []ManufacturingOrderResponse {
	responses := make([]ManufacturingOrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toManufacturingOrderResponse(order))
	}
	return responses
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps application errors onto HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	var (
		notFoundErr *errs.ObjectNotFoundError
		versionErr  *errs.VersionIsInvalidError
		invalidErr  *errs.ValueIsInvalidError
		requiredErr *errs.ValueIsRequiredError
		rangeErr    *errs.ValueIsOutOfRangeError
	)

	switch {
	case errors.As(err, &notFoundErr):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.As(err, &versionErr):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.As(err, &invalidErr), errors.As(err, &requiredErr), errors.As(err, &rangeErr):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
