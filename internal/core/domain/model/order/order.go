package order

import (
	"errors"
	"fmt"

	"tableside/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a single table's requested set of menu items and its
// fulfillment status. It is the aggregate root that manages the order
// lifecycle from seeding through delivery.
//
// Order follows these invariants:
//   - Must have a positive unique identifier and table number
//   - Must reference a non-empty set of menu item identifiers
//   - Status transitions only carry valid Status values
//   - Can only be created through NewOrder constructor
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id int

	// table is the table the order was placed from
	table int

	// itemIDs references the menu items the order consists of
	itemIDs []int

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only
// way to create a valid Order, ensuring all business invariants are
// maintained. The order starts in Pending status.
//
// Parameters:
//   - id: Unique identifier for the order (must be positive)
//   - table: Table number the order belongs to (must be positive)
//   - itemIDs: Menu item identifiers (must be non-empty, all positive)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id int, table int, itemIDs []int) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTable(table),
		o.setItemIDs(itemIDs),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() int {
	return o.id
}

// Table returns the table number the order belongs to.
func (o *Order) Table() int {
	return o.table
}

// ItemIDs returns a copy of the menu item identifiers the order references.
func (o *Order) ItemIDs() []int {
	ids := make([]int, len(o.itemIDs))
	copy(ids, o.itemIDs)
	return ids
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Clone returns a deep copy of the order. Stores hand out clones so no
// caller ever holds a pointer into shared state.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.itemIDs = make([]int, len(o.itemIDs))
	copy(c.itemIDs, o.itemIDs)
	return &c
}

// References reports whether the order includes the given menu item.
func (o *Order) References(itemID int) bool {
	for _, id := range o.itemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}

// ChangeStatus replaces the order's status with newStatus.
//
// The new status must be a valid Status value; the transition itself is not
// restricted here because role-specific command handlers own the transition
// rules (kitchen gating, waiter advancement). Returns an error and leaves
// the order unchanged if newStatus is invalid.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Advance moves the order to the next workflow status.
//
// This method enforces the waiter-path invariant: a Delivered order cannot
// be advanced further. Returns an error and leaves the order unchanged if
// the transition is not allowed.
func (o *Order) Advance() error {
	newStatus, err := o.status.Advance()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setTable(table int) error {
	if table <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("table", fmt.Errorf("%d is not greater than 0", table))
	}
	o.table = table
	return nil
}

func (o *Order) setItemIDs(itemIDs []int) error {
	if len(itemIDs) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	ids := make([]int, len(itemIDs))
	for i, id := range itemIDs {
		if id <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("order item id", fmt.Errorf("%d is not greater than 0", id))
		}
		ids[i] = id
	}
	o.itemIDs = ids
	return nil
}
