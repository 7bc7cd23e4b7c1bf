// Package customerorder provides the domain model of the customer order
// bounded context. It implements the customer Order aggregate root tracking a
// purchase from placement through manufacturing, shipping, and delivery.
//
// The package includes:
//   - Order: The aggregate root owning customer info, items, total, and status
//   - Status: A state machine from Placed through Delivered, with Cancelled
//   - OrderItem: A single priced order line
//   - CustomerInfo: Who bought the order and where it ships to
//   - Domain events raised on placement, status changes, and cancellation
//
// Key business rules:
//   - An order needs at least one item and all items share a currency
//   - The total is derived from the item totals and never set directly
//   - Delivered and Cancelled are terminal states
//   - The notify and mark methods are guarded: they only transition from the
//     exact expected predecessor state and silently do nothing otherwise,
//     which makes duplicate event delivery harmless
//   - An order may be correlated with a manufacturing order; linking changes
//     neither the status nor raises an event
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package customerorder
