// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validated
// constructor, Validate guard, and a handler that routes every mutation
// through the stores.
//
// The command surface is split by role so that illegal transitions are
// unrepresentable at the boundary: the kitchen gets start/ready/no-stock,
// the waiter gets the derived advancement, the admin gets stock toggling
// and account management, and the customer gets table calls and payments.
package commands
