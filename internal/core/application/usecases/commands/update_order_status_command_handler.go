package commands

import (
	"context"

	"tableside/internal/core/domain/model/notification"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies a status transition to a single
// order and runs the status side effects:
//
//   - transition to NoStock marks every menu item the order references as
//     out of stock, regardless of other orders needing those items
//   - transition to Ready appends a waiter notification carrying the
//     order's table, without de-duplication
//
// No other order is ever touched. An unknown order id fails with an
// ObjectNotFoundError and leaves all state unchanged.
type UpdateOrderStatusCommandHandler struct {
	orderStore        ports.OrderStore
	menuStore         ports.MenuStore
	notificationStore ports.NotificationStore
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// transitions.
func NewUpdateOrderStatusCommandHandler(
	orderStore ports.OrderStore,
	menuStore ports.MenuStore,
	notificationStore ports.NotificationStore,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		orderStore:        orderStore,
		menuStore:         menuStore,
		notificationStore: notificationStore,
	}
}

// Handle processes the status transition command.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orderStore.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Table resolved before mutation; notifications must carry the table
	// the order had when it became ready.
	table := o.Table()

	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return err
	}
	if err = h.orderStore.Update(ctx, o); err != nil {
		return err
	}

	switch cmd.Status() {
	case order.NoStock:
		return h.cascadeOutOfStock(ctx, o)
	case order.Ready:
		return h.notifyWaiter(ctx, o.ID(), table)
	default:
		return nil
	}
}

// cascadeOutOfStock marks exactly the menu items the order references as
// unavailable.
func (h UpdateOrderStatusCommandHandler) cascadeOutOfStock(ctx context.Context, o *order.Order) error {
	for _, itemID := range o.ItemIDs() {
		item, err := h.menuStore.Get(ctx, itemID)
		if err != nil {
			return err
		}
		item.MarkOutOfStock()
		if err = h.menuStore.Update(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (h UpdateOrderStatusCommandHandler) notifyWaiter(ctx context.Context, orderID, table int) error {
	n, err := notification.NewWaiterNotification(orderID, table)
	if err != nil {
		return err
	}
	return h.notificationStore.AddWaiterNotification(ctx, n)
}
