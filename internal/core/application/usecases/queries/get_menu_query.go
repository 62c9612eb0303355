package queries

import (
	"errors"

	"tableside/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery retrieves the menu with per-item availability. Customers
// use it to order, the admin to manage stock.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query to retrieve the menu.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// GetMenuQueryResponse is one menu item view.
type GetMenuQueryResponse struct {
	ID      int
	Name    string
	Price   decimal.Decimal
	InStock bool
}
