package queries

import (
	"errors"

	"tableside/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves every order as a render-ready view. The same
// view backs all role screens; role-specific handling (which buttons a
// screen shows) stays in the consumer, the data never differs.
//
// Example:
//
//	query := NewGetOrdersQuery()
//	handler := NewGetOrdersQueryHandler(orderStore, menuStore)
//
//	views, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
//
//	for _, v := range views {
//	    fmt.Printf("Order %d (table %d): %s at %d%%\n",
//	        v.ID, v.Table, v.Status, v.Progress)
//	}
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve all orders. This is a
// parameterless query; orders are returned in arrival order.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse is one order view. Status, Progress, Color and
// NextActionLabel are derived from the order status; CanPrepare reports
// whether every referenced menu item is in stock, which gates the cook's
// preparation actions.
type GetOrdersQueryResponse struct {
	ID              int
	Table           int
	Items           []string
	Status          string
	Progress        int
	Color           string
	NextActionLabel string
	CanPrepare      bool
}
