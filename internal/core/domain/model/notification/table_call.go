package notification

import (
	"errors"
	"fmt"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

var (
	// ErrTableCallIsNotConstructed is returned when a TableCall was not
	// created through NewTableCall.
	ErrTableCallIsNotConstructed = errors.New("TableCall must be created via NewTableCall constructor")
)

// TableCall is a transient alert that a customer has requested waiter
// assistance. It carries no correlation to any order.
type TableCall struct {
	id    kernel.UUID
	table int
	time  time.Time

	isConstructed bool
}

// NewTableCall creates an assistance alert for the given table, stamped
// with the current time.
func NewTableCall(table int) (*TableCall, error) {
	if table <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("table", fmt.Errorf("%d is not greater than 0", table))
	}

	return &TableCall{
		id:            kernel.NewUUID(),
		table:         table,
		time:          time.Now(),
		isConstructed: true,
	}, nil
}

// Validate ensures the table call was properly constructed.
func (c *TableCall) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrTableCallIsNotConstructed
	}
	return nil
}

// ID returns the call's stable identifier, used for acknowledgement.
func (c *TableCall) ID() kernel.UUID {
	return c.id
}

// Table returns the table requesting assistance.
func (c *TableCall) Table() int {
	return c.table
}

// Time returns the time the call was placed.
func (c *TableCall) Time() time.Time {
	return c.time
}
