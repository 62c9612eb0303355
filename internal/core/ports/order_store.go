// Package ports defines the storage contracts the application core depends
// on. The tableside system holds all state in process memory (persistence
// is out of scope), so these are store interfaces rather than transactional
// repositories; the memory adapter implements all of them over one owned
// store.
package ports

import (
	"context"

	"tableside/internal/core/domain/model/order"
)

// OrderStore defines the storage contract for order aggregates.
// Orders are seeded at startup; there is no runtime creation path.
type OrderStore interface {
	// Get retrieves an order by its identifier.
	// Returns an ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id int) (*order.Order, error)

	// GetAll retrieves all orders in seed order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error
}
