package commands

import (
	"errors"
	"fmt"

	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var (
	ErrToggleStockCommandIsNotConstructed = errors.New(
		"ToggleStockCommand must be created via NewToggleStockCommand constructor",
	)
)

// ToggleStockCommand is the admin request to flip a menu item's
// availability. Toggling has no cascading effect on orders referencing the
// item.
type ToggleStockCommand struct { //nolint:recvcheck //using for validation
	itemID int

	guard guard.ConstructorGuard
}

// NewToggleStockCommand creates a command to toggle a menu item's stock
// flag.
func NewToggleStockCommand(itemID int) (ToggleStockCommand, error) {
	if itemID <= 0 {
		return ToggleStockCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"item id",
			fmt.Errorf("%d is not greater than 0", itemID),
		)
	}
	return ToggleStockCommand{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleStockCommand) Validate() error {
	return c.guard.Validate(ErrToggleStockCommandIsNotConstructed)
}

// ItemID returns the menu item to toggle.
func (c ToggleStockCommand) ItemID() int {
	return c.itemID
}
