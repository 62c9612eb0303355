package queries

import (
	"context"

	"tableside/internal/core/ports"
)

// GetNotificationsQueryHandler assembles the waiter's alert lists from
// the notification store.
type GetNotificationsQueryHandler struct {
	notificationStore ports.NotificationStore
}

// NewGetNotificationsQueryHandler creates a handler for alert views.
func NewGetNotificationsQueryHandler(notificationStore ports.NotificationStore) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{notificationStore: notificationStore}
}

// Handle executes the query and returns both alert lists in arrival
// order.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) (GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	notifications, err := h.notificationStore.GetWaiterNotifications(ctx)
	if err != nil {
		return GetNotificationsQueryResponse{}, err
	}
	calls, err := h.notificationStore.GetTableCalls(ctx)
	if err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	response := GetNotificationsQueryResponse{
		Orders: make([]WaiterNotificationView, 0, len(notifications)),
		Calls:  make([]TableCallView, 0, len(calls)),
	}
	for _, n := range notifications {
		response.Orders = append(response.Orders, WaiterNotificationView{
			ID:        n.ID(),
			OrderID:   n.OrderID(),
			Table:     n.Table(),
			CreatedAt: n.CreatedAt(),
		})
	}
	for _, c := range calls {
		response.Calls = append(response.Calls, TableCallView{
			ID:    c.ID(),
			Table: c.Table(),
			Time:  c.Time(),
		})
	}

	return response, nil
}
