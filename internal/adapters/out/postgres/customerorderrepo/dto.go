// Package customerorderrepo provides data transfer objects and mapping
// functions for customer order persistence. This package implements the
// repository pattern for the customer order aggregate, handling the
// conversion between domain entities and database representations.
package customerorderrepo

import (
	"encoding/json"
	"time"

	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting customer order
// aggregates. The line items are serialized as a jsonb document since they
// are only ever read and written as part of the whole aggregate. Monetary
// amounts are stored as decimal strings next to the shared currency code.
// The version column backs the conditional update used for optimistic
// concurrency control.
type OrderDTO struct {
	ID                   uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Customer             CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Items                string      `gorm:"type:jsonb"`
	TotalAmount          string
	Currency             string
	Status               int `gorm:"index"`
	PlacedAt             time.Time
	UpdatedAt            time.Time
	ManufacturingOrderID *uuid.UUID `gorm:"type:uuid;index"`
	Version              int
}

// TableName specifies the database table name for customer order entities.
func (OrderDTO) TableName() string {
	return "customer_orders"
}

// CustomerDTO represents the embedded buyer details within the customer
// order table.
type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;index"`
	Name    string
	Email   string
	Address string
}

// itemDTO is the jsonb element shape for a single order line. The currency
// lives on the order row; every line shares it.
type itemDTO struct {
	ProductCode string `json:"productCode"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

// fromDomain converts a customer order aggregate to its database representation.
func fromDomain(aggregate *customerorder.Order) (OrderDTO, error) {
	items := aggregate.Items()
	itemDTOs := make([]itemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, itemDTO{
			ProductCode: item.ProductCode(),
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount().String(),
		})
	}

	serializedItems, err := json.Marshal(itemDTOs)
	if err != nil {
		return OrderDTO{}, err
	}

	var manufacturingOrderID *uuid.UUID
	if id := aggregate.ManufacturingOrderID(); id != nil {
		raw := id.Bytes()
		manufacturingOrderID = &raw
	}

	info := aggregate.CustomerInfo()
	return OrderDTO{
		ID: aggregate.ID().Bytes(),
		Customer: CustomerDTO{
			ID:      info.CustomerID().Bytes(),
			Name:    info.Name(),
			Email:   info.Email(),
			Address: info.Address(),
		},
		Items:                string(serializedItems),
		TotalAmount:          aggregate.TotalAmount().Amount().String(),
		Currency:             aggregate.TotalAmount().Currency().Code(),
		Status:               int(aggregate.Status()),
		PlacedAt:             aggregate.PlacedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
		ManufacturingOrderID: manufacturingOrderID,
		Version:              aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO to a customer order aggregate.
// Reconstructs the complete aggregate including items and the correlation
// link using RestoreOrder.
func toDomain(dto OrderDTO) (*customerorder.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.Customer.ID[:])
	if err != nil {
		return nil, err
	}

	info, err := customerorder.NewCustomerInfo(customerID, dto.Customer.Name, dto.Customer.Email, dto.Customer.Address)
	if err != nil {
		return nil, err
	}

	currency, err := kernel.NewCurrency(dto.Currency)
	if err != nil {
		return nil, err
	}

	var itemDTOs []itemDTO
	if err = json.Unmarshal([]byte(dto.Items), &itemDTOs); err != nil {
		return nil, err
	}

	items := make([]customerorder.OrderItem, 0, len(itemDTOs))
	for _, raw := range itemDTOs {
		unitPrice, priceErr := kernel.NewMoneyFromString(raw.UnitPrice, currency)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := customerorder.NewOrderItem(raw.ProductCode, raw.Description, raw.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	totalAmount, err := kernel.NewMoneyFromString(dto.TotalAmount, currency)
	if err != nil {
		return nil, err
	}

	var manufacturingOrderID *kernel.UUID
	if dto.ManufacturingOrderID != nil {
		linkID, linkErr := kernel.UUIDFromBytes((*dto.ManufacturingOrderID)[:])
		if linkErr != nil {
			return nil, linkErr
		}
		manufacturingOrderID = &linkID
	}

	return customerorder.RestoreOrder(
		id,
		info,
		items,
		totalAmount,
		customerorder.Status(dto.Status),
		dto.PlacedAt,
		dto.UpdatedAt,
		manufacturingOrderID,
		dto.Version,
	)
}
