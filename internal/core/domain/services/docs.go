// Package services provides domain services that implement business rules
// spanning more than a single aggregate in the order management system.
//
// The package includes:
//   - ProductionScheduler: A domain service validating manufacturing schedules
//     before an order is accepted into the production plan
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
