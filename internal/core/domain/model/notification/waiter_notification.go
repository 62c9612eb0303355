package notification

import (
	"errors"
	"fmt"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

var (
	// ErrWaiterNotificationIsNotConstructed is returned when a
	// WaiterNotification was not created through NewWaiterNotification.
	ErrWaiterNotificationIsNotConstructed = errors.New(
		"WaiterNotification must be created via NewWaiterNotification constructor",
	)
)

// WaiterNotification is a transient alert that an order has reached the
// ready state and awaits pickup. Notifications are intentionally not
// de-duplicated: an order that becomes ready twice (for example after the
// kitchen re-marks it) alerts twice, matching the re-alert behavior of the
// original front of house flow.
type WaiterNotification struct {
	id        kernel.UUID
	orderID   int
	table     int
	createdAt time.Time

	isConstructed bool
}

// NewWaiterNotification creates a ready alert for the given order and
// table. The table is the order's table at the moment the alert is raised.
func NewWaiterNotification(orderID int, table int) (*WaiterNotification, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", orderID))
	}
	if table <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("table", fmt.Errorf("%d is not greater than 0", table))
	}

	return &WaiterNotification{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		table:         table,
		createdAt:     time.Now(),
		isConstructed: true,
	}, nil
}

// Validate ensures the notification was properly constructed.
func (n *WaiterNotification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrWaiterNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's stable identifier, used for
// acknowledgement.
func (n *WaiterNotification) ID() kernel.UUID {
	return n.id
}

// OrderID returns the order the notification refers to.
func (n *WaiterNotification) OrderID() int {
	return n.orderID
}

// Table returns the table the order belongs to.
func (n *WaiterNotification) Table() int {
	return n.table
}

// CreatedAt returns the time the alert was raised.
func (n *WaiterNotification) CreatedAt() time.Time {
	return n.createdAt
}
