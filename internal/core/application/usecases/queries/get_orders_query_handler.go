package queries

import (
	"context"

	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"
)

// GetOrdersQueryHandler assembles order views from the order and menu
// stores. Item ids are resolved to display names; an order referencing an
// id missing from the menu fails the whole query, since the stores are
// seeded together such a reference is a programming error.
type GetOrdersQueryHandler struct {
	orderStore ports.OrderStore
	menuStore  ports.MenuStore
}

// NewGetOrdersQueryHandler creates a handler for order views.
func NewGetOrdersQueryHandler(orderStore ports.OrderStore, menuStore ports.MenuStore) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orderStore: orderStore, menuStore: menuStore}
}

// Handle executes the query and returns one view per order, in the
// store's arrival order.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.menuStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]*menu.Item, len(items))
	for _, item := range items {
		byID[item.ID()] = item
	}

	orders, err := h.orderStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]GetOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		view := GetOrdersQueryResponse{
			ID:              o.ID(),
			Table:           o.Table(),
			Items:           make([]string, 0, len(o.ItemIDs())),
			Status:          o.Status().String(),
			Progress:        o.Status().Progress(),
			Color:           o.Status().ProgressColor(),
			NextActionLabel: o.Status().NextActionLabel(),
			CanPrepare:      true,
		}

		for _, itemID := range o.ItemIDs() {
			item, ok := byID[itemID]
			if !ok {
				return nil, errs.NewObjectNotFoundError("itemId", itemID)
			}
			view.Items = append(view.Items, item.Name())
			if !item.InStock() {
				view.CanPrepare = false
			}
		}

		views = append(views, view)
	}

	return views, nil
}
