package commands

import (
	"errors"
	"fmt"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var (
	ErrClearNotificationCommandIsNotConstructed = errors.New(
		"ClearNotificationCommand must be created via NewClearNotificationCommand constructor",
	)
)

// NotificationKind selects which alert list an acknowledgement targets.
type NotificationKind string

const (
	// NotificationKindOrder targets waiter (order ready) notifications.
	NotificationKindOrder NotificationKind = "order"

	// NotificationKindTable targets table calls.
	NotificationKindTable NotificationKind = "table"
)

// NotificationKindFromString resolves a kind name to its value.
func NotificationKindFromString(name string) (NotificationKind, error) {
	switch NotificationKind(name) {
	case NotificationKindOrder, NotificationKindTable:
		return NotificationKind(name), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"notification kind",
			fmt.Errorf("%q is not a valid notification kind", name),
		)
	}
}

// ClearNotificationCommand is the waiter acknowledgement of an alert.
// Alerts are addressed by their stable identifier, never by list position,
// so acknowledging one entry cannot shift the meaning of another
// acknowledgement issued against a stale view.
type ClearNotificationCommand struct { //nolint:recvcheck //using for validation
	kind NotificationKind
	id   kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearNotificationCommand creates an acknowledgement for the alert
// with the given kind and identifier.
func NewClearNotificationCommand(kind NotificationKind, id kernel.UUID) (ClearNotificationCommand, error) {
	cmd := ClearNotificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if _, err := NotificationKindFromString(string(kind)); err != nil {
		return ClearNotificationCommand{}, err
	}
	if err := id.Validate(); err != nil {
		return ClearNotificationCommand{}, err
	}

	cmd.kind = kind
	cmd.id = id
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearNotificationCommand) Validate() error {
	return c.guard.Validate(ErrClearNotificationCommandIsNotConstructed)
}

// Kind returns the alert list the acknowledgement targets.
func (c ClearNotificationCommand) Kind() NotificationKind {
	return c.kind
}

// ID returns the identifier of the alert to remove.
func (c ClearNotificationCommand) ID() kernel.UUID {
	return c.id
}
