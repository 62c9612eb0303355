package commands

import (
	"errors"

	"tableside/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
)

// AdvanceOrderCommand is the waiter request to move an order to the next
// workflow status. The target status is derived from the order's current
// status, so the waiter surface never chooses a status directly.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order.
func NewAdvanceOrderCommand(orderID int) (AdvanceOrderCommand, error) {
	if orderID <= 0 {
		return AdvanceOrderCommand{}, newOrderIDError(orderID)
	}
	return AdvanceOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceOrderCommand) OrderID() int {
	return c.orderID
}
