package commands

import (
	"context"

	"tableside/internal/core/ports"
)

// ToggleStockCommandHandler flips availability on a single menu item.
// An unknown item id fails with an ObjectNotFoundError and leaves state
// unchanged.
type ToggleStockCommandHandler struct {
	menuStore ports.MenuStore
}

// NewToggleStockCommandHandler creates a handler for stock toggling.
func NewToggleStockCommandHandler(menuStore ports.MenuStore) ToggleStockCommandHandler {
	return ToggleStockCommandHandler{menuStore: menuStore}
}

// Handle processes the toggle command.
func (h ToggleStockCommandHandler) Handle(ctx context.Context, cmd ToggleStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := h.menuStore.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	item.ToggleStock()
	return h.menuStore.Update(ctx, item)
}
