package commands

import (
	"context"
	"errors"

	"tableside/internal/core/domain/model/restaurant"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/guard"
)

var (
	ErrUpdateRestaurantInfoCommandIsNotConstructed = errors.New(
		"UpdateRestaurantInfoCommand must be created via NewUpdateRestaurantInfoCommand constructor",
	)
)

// UpdateRestaurantInfoCommand is the admin request to replace the
// restaurant profile used for QR-code printing. Validation happens in the
// restaurant.NewInfo constructor, so the command only carries the already
// validated profile.
type UpdateRestaurantInfoCommand struct { //nolint:recvcheck //using for validation
	info *restaurant.Info

	guard guard.ConstructorGuard
}

// NewUpdateRestaurantInfoCommand creates a profile replacement request.
func NewUpdateRestaurantInfoCommand(info *restaurant.Info) (UpdateRestaurantInfoCommand, error) {
	if err := info.Validate(); err != nil {
		return UpdateRestaurantInfoCommand{}, err
	}
	return UpdateRestaurantInfoCommand{info: info, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRestaurantInfoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRestaurantInfoCommandIsNotConstructed)
}

// Info returns the new profile.
func (c UpdateRestaurantInfoCommand) Info() *restaurant.Info {
	return c.info
}

// UpdateRestaurantInfoCommandHandler replaces the stored restaurant
// profile.
type UpdateRestaurantInfoCommandHandler struct {
	restaurantStore ports.RestaurantStore
}

// NewUpdateRestaurantInfoCommandHandler creates a handler for profile
// replacement.
func NewUpdateRestaurantInfoCommandHandler(restaurantStore ports.RestaurantStore) UpdateRestaurantInfoCommandHandler {
	return UpdateRestaurantInfoCommandHandler{restaurantStore: restaurantStore}
}

// Handle processes the replacement command.
func (h UpdateRestaurantInfoCommandHandler) Handle(ctx context.Context, cmd UpdateRestaurantInfoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.restaurantStore.Update(ctx, cmd.Info())
}
