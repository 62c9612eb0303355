package commands

import (
	"context"
	"errors"
	"fmt"

	"tableside/internal/core/domain/model/notification"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var (
	ErrCallWaiterCommandIsNotConstructed = errors.New(
		"CallWaiterCommand must be created via NewCallWaiterCommand constructor",
	)
)

// CallWaiterCommand is the customer request for waiter assistance at a
// table. It carries no correlation to any order.
type CallWaiterCommand struct { //nolint:recvcheck //using for validation
	table int

	guard guard.ConstructorGuard
}

// NewCallWaiterCommand creates an assistance request for a table.
func NewCallWaiterCommand(table int) (CallWaiterCommand, error) {
	if table <= 0 {
		return CallWaiterCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"table",
			fmt.Errorf("%d is not greater than 0", table),
		)
	}
	return CallWaiterCommand{table: table, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CallWaiterCommand) Validate() error {
	return c.guard.Validate(ErrCallWaiterCommandIsNotConstructed)
}

// Table returns the table requesting assistance.
func (c CallWaiterCommand) Table() int {
	return c.table
}

// CallWaiterCommandHandler appends a table call, stamped with the current
// time, to the assistance list.
type CallWaiterCommandHandler struct {
	notificationStore ports.NotificationStore
}

// NewCallWaiterCommandHandler creates a handler for assistance requests.
func NewCallWaiterCommandHandler(notificationStore ports.NotificationStore) CallWaiterCommandHandler {
	return CallWaiterCommandHandler{notificationStore: notificationStore}
}

// Handle processes the assistance request.
func (h CallWaiterCommandHandler) Handle(ctx context.Context, cmd CallWaiterCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	call, err := notification.NewTableCall(cmd.Table())
	if err != nil {
		return err
	}
	return h.notificationStore.AddTableCall(ctx, call)
}
