package queries

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var (
	ErrGetNotificationsQueryIsNotConstructed = errors.New(
		"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
	)
)

// GetNotificationsQuery retrieves the waiter's pending alerts: ready
// orders awaiting pickup and open table calls. Both lists keep arrival
// order so the oldest alert is always first.
type GetNotificationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query to retrieve pending alerts.
func NewGetNotificationsQuery() GetNotificationsQuery {
	return GetNotificationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// WaiterNotificationView is one ready-order alert. The ID is the handle
// used to acknowledge it.
type WaiterNotificationView struct {
	ID        kernel.UUID
	OrderID   int
	Table     int
	CreatedAt time.Time
}

// TableCallView is one open assistance request.
type TableCallView struct {
	ID    kernel.UUID
	Table int
	Time  time.Time
}

// GetNotificationsQueryResponse bundles both alert kinds.
type GetNotificationsQueryResponse struct {
	Orders []WaiterNotificationView
	Calls  []TableCallView
}
