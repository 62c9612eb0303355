package ports

import (
	"context"

	"tableside/internal/core/domain/model/menu"
)

// MenuStore defines the storage contract for menu items.
type MenuStore interface {
	// Get retrieves a menu item by its identifier.
	// Returns an ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id int) (*menu.Item, error)

	// GetAll retrieves all menu items in seed order.
	GetAll(ctx context.Context) ([]*menu.Item, error)

	// Update persists changes to an existing menu item.
	Update(ctx context.Context, item *menu.Item) error
}
