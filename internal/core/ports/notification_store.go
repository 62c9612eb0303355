package ports

import (
	"context"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/notification"
)

// NotificationStore defines the storage contract for transient alerts:
// waiter notifications and table calls. Both lists keep arrival order;
// removal is by the entry's stable identifier and preserves the relative
// order of the rest.
type NotificationStore interface {
	// AddWaiterNotification appends a ready alert.
	// Duplicates for the same order are accepted.
	AddWaiterNotification(ctx context.Context, n *notification.WaiterNotification) error

	// AddTableCall appends an assistance alert.
	AddTableCall(ctx context.Context, call *notification.TableCall) error

	// GetWaiterNotifications retrieves ready alerts in arrival order.
	GetWaiterNotifications(ctx context.Context) ([]*notification.WaiterNotification, error)

	// GetTableCalls retrieves assistance alerts in arrival order.
	GetTableCalls(ctx context.Context) ([]*notification.TableCall, error)

	// RemoveWaiterNotification acknowledges a ready alert by id.
	// Returns an ObjectNotFoundError for an unknown id.
	RemoveWaiterNotification(ctx context.Context, id kernel.UUID) error

	// RemoveTableCall acknowledges an assistance alert by id.
	// Returns an ObjectNotFoundError for an unknown id.
	RemoveTableCall(ctx context.Context, id kernel.UUID) error
}
