// Package order provides domain entities and business logic for order
// tracking in the tableside front-of-house system. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, table and items
//   - Status: A closed enumeration of fulfillment states with derived views
//
// Key business rules:
//   - Orders must have a valid identifier, table number and a non-empty item set
//   - Order status follows a defined workflow: Pending -> Preparing -> Ready -> Delivered
//   - NoStock is reachable from the kitchen at any point before delivery
//   - Delivered is terminal for the waiter advancement path
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
