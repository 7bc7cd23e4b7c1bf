// Package manufacturing provides the domain model of the manufacturing
// bounded context. It implements the manufacturing Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root owning product specification, timeline, and status
//   - Status: A state machine enforcing Pending -> InProgress -> Completed/Cancelled
//   - Timeline: The expected and actual production window
//   - ProductSpecification: What is produced and in which quantity
//   - Domain events raised on creation, status changes, and completion
//
// Key business rules:
//   - Completed and Cancelled are terminal states
//   - Starting production stamps the actual start date once
//   - Completing production stamps the actual completion date and raises a
//     dedicated completion event alongside the status-changed event
//   - An order is overdue when unfinished past its expected completion
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package manufacturing
