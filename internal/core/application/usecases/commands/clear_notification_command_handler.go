package commands

import (
	"context"

	"tableside/internal/core/ports"
)

// ClearNotificationCommandHandler removes an acknowledged alert from its
// list. The relative order of the remaining alerts is preserved. An
// unknown id fails with an ObjectNotFoundError and leaves state unchanged.
type ClearNotificationCommandHandler struct {
	notificationStore ports.NotificationStore
}

// NewClearNotificationCommandHandler creates a handler for alert
// acknowledgements.
func NewClearNotificationCommandHandler(notificationStore ports.NotificationStore) ClearNotificationCommandHandler {
	return ClearNotificationCommandHandler{notificationStore: notificationStore}
}

// Handle processes the acknowledgement command.
func (h ClearNotificationCommandHandler) Handle(ctx context.Context, cmd ClearNotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Kind() == NotificationKindTable {
		return h.notificationStore.RemoveTableCall(ctx, cmd.ID())
	}
	return h.notificationStore.RemoveWaiterNotification(ctx, cmd.ID())
}
