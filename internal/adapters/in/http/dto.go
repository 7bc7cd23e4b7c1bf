package http

import "time"

// Request and response bodies for the REST API. Money travels as decimal
// strings next to an ISO currency code; statuses travel in their wire form,
// e.g. "MANUFACTURING_IN_PROGRESS".

type CustomerRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type OrderItemRequest struct {
	ProductCode string `json:"productCode"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

type PlaceCustomerOrderRequest struct {
	Customer CustomerRequest    `json:"customer"`
	Currency string             `json:"currency"`
	Items    []OrderItemRequest `json:"items"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

type LinkManufacturingOrderRequest struct {
	ManufacturingOrderID string `json:"manufacturingOrderId"`
}

type CreateManufacturingOrderRequest struct {
	ProductCode        string    `json:"productCode"`
	Description        string    `json:"description"`
	Quantity           int       `json:"quantity"`
	Specifications     string    `json:"specifications"`
	ExpectedStart      time.Time `json:"expectedStart"`
	ExpectedCompletion time.Time `json:"expectedCompletion"`
}

type OrderCreatedResponse struct {
	ID string `json:"id"`
}

type OrderItemResponse struct {
	ProductCode string `json:"productCode"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

type CustomerOrderResponse struct {
	ID                   string              `json:"id"`
	CustomerID           string              `json:"customerId"`
	CustomerName         string              `json:"customerName"`
	CustomerEmail        string              `json:"customerEmail"`
	CustomerAddress      string              `json:"customerAddress"`
	Items                []OrderItemResponse `json:"items"`
	TotalAmount          string              `json:"totalAmount"`
	Currency             string              `json:"currency"`
	Status               string              `json:"status"`
	PlacedAt             time.Time           `json:"placedAt"`
	UpdatedAt            time.Time           `json:"updatedAt"`
	ManufacturingOrderID *string             `json:"manufacturingOrderId,omitempty"`
}

type ManufacturingOrderResponse struct {
	ID                 string     `json:"id"`
	ProductCode        string     `json:"productCode"`
	Description        string     `json:"description"`
	Quantity           int        `json:"quantity"`
	Specifications     string     `json:"specifications"`
	Status             string     `json:"status"`
	ExpectedStart      time.Time  `json:"expectedStart"`
	ExpectedCompletion time.Time  `json:"expectedCompletion"`
	ActualStart        *time.Time `json:"actualStart,omitempty"`
	ActualCompletion   *time.Time `json:"actualCompletion,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
