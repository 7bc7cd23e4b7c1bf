// Package kernel provides the shared domain primitives used by both order
// bounded contexts. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money and Currency: Immutable decimal amounts with same-currency arithmetic
//   - DomainEvent and EventSource: The contract between aggregates and the event bus
//   - ConstructorGuard: A defensive programming pattern to ensure proper object construction
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
