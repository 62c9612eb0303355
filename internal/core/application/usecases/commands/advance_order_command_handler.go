package commands

import (
	"context"

	"tableside/internal/core/ports"
)

// AdvanceOrderCommandHandler is the waiter's restricted operation surface.
// It derives the next status from the order's current status and delegates
// to the shared transition handler, so advancing into Ready raises the
// waiter notification like any other path.
//
// A Delivered order cannot be advanced; the attempt fails and leaves all
// state unchanged.
type AdvanceOrderCommandHandler struct {
	orderStore ports.OrderStore
	update     UpdateOrderStatusCommandHandler
}

// NewAdvanceOrderCommandHandler creates the waiter's command handler.
func NewAdvanceOrderCommandHandler(
	orderStore ports.OrderStore,
	update UpdateOrderStatusCommandHandler,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		orderStore: orderStore,
		update:     update,
	}
}

// Handle processes the advancement command.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orderStore.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	next, err := o.Status().Advance()
	if err != nil {
		return err
	}

	updateCmd, err := NewUpdateOrderStatusCommand(cmd.OrderID(), next)
	if err != nil {
		return err
	}
	return h.update.Handle(ctx, updateCmd)
}
