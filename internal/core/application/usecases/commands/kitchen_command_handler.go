package commands

import (
	"context"
	"errors"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
)

// ErrOrderItemsOutOfStock is returned when the kitchen tries to start or
// finish an order while any of its items is unavailable.
var ErrOrderItemsOutOfStock = errors.New("order references items that are out of stock")

// KitchenCommandHandler is the cook's restricted operation surface: start
// preparing, mark ready and mark no stock. Starting and finishing are gated
// on every referenced menu item being in stock; declaring no stock is
// always permitted.
//
// All transitions delegate to the shared status transition handler so the
// status side effects apply uniformly.
type KitchenCommandHandler struct {
	orderStore ports.OrderStore
	menuStore  ports.MenuStore
	update     UpdateOrderStatusCommandHandler
}

// NewKitchenCommandHandler creates the cook's command handler.
func NewKitchenCommandHandler(
	orderStore ports.OrderStore,
	menuStore ports.MenuStore,
	update UpdateOrderStatusCommandHandler,
) KitchenCommandHandler {
	return KitchenCommandHandler{
		orderStore: orderStore,
		menuStore:  menuStore,
		update:     update,
	}
}

// HandleStartPreparing moves the order to Preparing, provided every
// referenced item is in stock.
func (h KitchenCommandHandler) HandleStartPreparing(ctx context.Context, cmd StartPreparingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.gatedTransition(ctx, cmd.OrderID(), order.Preparing)
}

// HandleMarkReady moves the order to Ready, provided every referenced item
// is in stock. The shared transition handler raises the waiter
// notification.
func (h KitchenCommandHandler) HandleMarkReady(ctx context.Context, cmd MarkReadyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.gatedTransition(ctx, cmd.OrderID(), order.Ready)
}

// HandleMarkNoStock moves the order to NoStock. This transition is never
// gated; the shared transition handler cascades the unavailability to the
// referenced menu items.
func (h KitchenCommandHandler) HandleMarkNoStock(ctx context.Context, cmd MarkNoStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.transition(ctx, cmd.OrderID(), order.NoStock)
}

func (h KitchenCommandHandler) gatedTransition(ctx context.Context, orderID int, status order.Status) error {
	o, err := h.orderStore.Get(ctx, orderID)
	if err != nil {
		return err
	}

	for _, itemID := range o.ItemIDs() {
		item, itemErr := h.menuStore.Get(ctx, itemID)
		if itemErr != nil {
			return itemErr
		}
		if !item.InStock() {
			return ErrOrderItemsOutOfStock
		}
	}

	return h.transition(ctx, orderID, status)
}

func (h KitchenCommandHandler) transition(ctx context.Context, orderID int, status order.Status) error {
	cmd, err := NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return err
	}
	return h.update.Handle(ctx, cmd)
}
