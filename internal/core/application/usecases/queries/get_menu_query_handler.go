package queries

import (
	"context"

	"tableside/internal/core/ports"
)

// GetMenuQueryHandler assembles menu item views from the menu store.
type GetMenuQueryHandler struct {
	menuStore ports.MenuStore
}

// NewGetMenuQueryHandler creates a handler for menu views.
func NewGetMenuQueryHandler(menuStore ports.MenuStore) GetMenuQueryHandler {
	return GetMenuQueryHandler{menuStore: menuStore}
}

// Handle executes the query and returns the menu in the store's order.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.menuStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]GetMenuQueryResponse, 0, len(items))
	for _, item := range items {
		views = append(views, GetMenuQueryResponse{
			ID:      item.ID(),
			Name:    item.Name(),
			Price:   item.Price(),
			InStock: item.InStock(),
		})
	}

	return views, nil
}
