package ports

import (
	"context"

	"tableside/internal/core/domain/model/restaurant"
)

// RestaurantStore defines the storage contract for the restaurant profile.
type RestaurantStore interface {
	// Get retrieves the current profile.
	Get(ctx context.Context) (*restaurant.Info, error)

	// Update replaces the profile.
	Update(ctx context.Context, info *restaurant.Info) error
}
