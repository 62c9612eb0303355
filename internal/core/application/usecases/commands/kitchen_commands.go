package commands

import (
	"errors"
	"fmt"

	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var (
	ErrStartPreparingCommandIsNotConstructed = errors.New(
		"StartPreparingCommand must be created via NewStartPreparingCommand constructor",
	)
	ErrMarkReadyCommandIsNotConstructed = errors.New(
		"MarkReadyCommand must be created via NewMarkReadyCommand constructor",
	)
	ErrMarkNoStockCommandIsNotConstructed = errors.New(
		"MarkNoStockCommand must be created via NewMarkNoStockCommand constructor",
	)
)

// StartPreparingCommand is the kitchen request to begin cooking an order.
type StartPreparingCommand struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

// NewStartPreparingCommand creates a command to start preparing an order.
func NewStartPreparingCommand(orderID int) (StartPreparingCommand, error) {
	if orderID <= 0 {
		return StartPreparingCommand{}, newOrderIDError(orderID)
	}
	return StartPreparingCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPreparingCommand) Validate() error {
	return c.guard.Validate(ErrStartPreparingCommandIsNotConstructed)
}

// OrderID returns the order to start preparing.
func (c StartPreparingCommand) OrderID() int {
	return c.orderID
}

// MarkReadyCommand is the kitchen request to mark an order plated and
// ready for pickup.
type MarkReadyCommand struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

// NewMarkReadyCommand creates a command to mark an order ready.
func NewMarkReadyCommand(orderID int) (MarkReadyCommand, error) {
	if orderID <= 0 {
		return MarkReadyCommand{}, newOrderIDError(orderID)
	}
	return MarkReadyCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyCommandIsNotConstructed)
}

// OrderID returns the order to mark ready.
func (c MarkReadyCommand) OrderID() int {
	return c.orderID
}

// MarkNoStockCommand is the kitchen request to declare an order
// unfulfillable because one or more of its items ran out.
type MarkNoStockCommand struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

// NewMarkNoStockCommand creates a command to mark an order out of stock.
func NewMarkNoStockCommand(orderID int) (MarkNoStockCommand, error) {
	if orderID <= 0 {
		return MarkNoStockCommand{}, newOrderIDError(orderID)
	}
	return MarkNoStockCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNoStockCommand) Validate() error {
	return c.guard.Validate(ErrMarkNoStockCommandIsNotConstructed)
}

// OrderID returns the order to mark out of stock.
func (c MarkNoStockCommand) OrderID() int {
	return c.orderID
}

func newOrderIDError(orderID int) error {
	return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", orderID))
}
