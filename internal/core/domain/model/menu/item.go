package menu

import (
	"errors"
	"fmt"

	"tableside/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item represents a dish on the menu.
//
// Item follows these invariants:
//   - Must have a positive unique identifier and a non-empty name
//   - Price must not be negative
//   - Availability is the only mutable attribute
type Item struct {
	// id is the unique identifier for the menu item
	id int

	// name is the dish name shown to all roles
	name string

	// price is the dish price; never negative
	price decimal.Decimal

	// inStock reports whether the kitchen can currently prepare the dish
	inStock bool

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates a new menu Item with validation. Items start in stock.
//
// Parameters:
//   - id: Unique identifier for the item (must be positive)
//   - name: Dish name (must be non-empty)
//   - price: Dish price (must not be negative)
//
// Returns:
//   - *Item: The created item if all validations pass
//   - error: Validation error if any parameter is invalid
func NewItem(id int, name string, price decimal.Decimal) (*Item, error) {
	item := &Item{
		inStock:       true,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through
// NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id == other.id
}

// ID returns the item's unique identifier.
func (i *Item) ID() int {
	return i.id
}

// Name returns the dish name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the dish price.
func (i *Item) Price() decimal.Decimal {
	return i.price
}

// InStock reports whether the kitchen can currently prepare the dish.
func (i *Item) InStock() bool {
	return i.inStock
}

// Clone returns a copy of the item. Stores hand out clones so no caller
// ever holds a pointer into shared state.
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

// ToggleStock flips the availability flag. Applying it twice returns the
// item to its original availability.
func (i *Item) ToggleStock() {
	i.inStock = !i.inStock
}

// MarkOutOfStock sets the item unavailable. Used by the stock cascade when
// the kitchen cannot fulfill an order referencing this item.
func (i *Item) MarkOutOfStock() {
	i.inStock = false
}

func (i *Item) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d is not greater than 0", id))
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	i.price = price
	return nil
}
