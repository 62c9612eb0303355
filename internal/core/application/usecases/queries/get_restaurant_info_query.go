package queries

import (
	"context"
	"errors"

	"tableside/internal/core/domain/model/restaurant"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/guard"
)

var (
	ErrGetRestaurantInfoQueryIsNotConstructed = errors.New(
		"GetRestaurantInfoQuery must be created via NewGetRestaurantInfoQuery constructor",
	)
)

// GetRestaurantInfoQuery retrieves the restaurant profile used by the
// admin screen and QR-code printing.
type GetRestaurantInfoQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRestaurantInfoQuery creates a query to retrieve the profile.
func NewGetRestaurantInfoQuery() GetRestaurantInfoQuery {
	return GetRestaurantInfoQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantInfoQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantInfoQueryIsNotConstructed)
}

// GetRestaurantInfoQueryHandler reads the profile from the restaurant
// store.
type GetRestaurantInfoQueryHandler struct {
	restaurantStore ports.RestaurantStore
}

// NewGetRestaurantInfoQueryHandler creates a handler for profile reads.
func NewGetRestaurantInfoQueryHandler(restaurantStore ports.RestaurantStore) GetRestaurantInfoQueryHandler {
	return GetRestaurantInfoQueryHandler{restaurantStore: restaurantStore}
}

// Handle executes the query.
func (h GetRestaurantInfoQueryHandler) Handle(ctx context.Context, query GetRestaurantInfoQuery) (*restaurant.Info, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.restaurantStore.Get(ctx)
}
