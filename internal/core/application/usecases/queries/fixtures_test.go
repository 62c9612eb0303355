package queries_test

import (
	"context"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/notification"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// fakeStore is a minimal in-memory implementation of the read-side ports,
// shared by the query handler tests.
type fakeStore struct {
	orders   []*order.Order
	items    []*menu.Item
	waiter   []*notification.WaiterNotification
	calls    []*notification.TableCall
	balances map[string]decimal.Decimal
}

func newSeededStore() *fakeStore {
	s := &fakeStore{balances: map[string]decimal.Decimal{}}

	for _, spec := range []struct {
		id    int
		name  string
		price int64
	}{
		{1, "Burger", 10},
		{2, "Fries", 5},
		{3, "Pizza", 15},
		{4, "Salad", 8},
	} {
		item, _ := menu.NewItem(spec.id, spec.name, decimal.NewFromInt(spec.price))
		s.items = append(s.items, item)
	}

	o1, _ := order.NewOrder(1, 1, []int{1, 2})
	o2, _ := order.NewOrder(2, 2, []int{3, 4})
	s.orders = append(s.orders, o1, o2)

	return s
}

func (s *fakeStore) Get(_ context.Context, id int) (*order.Order, error) {
	for _, o := range s.orders {
		if o.ID() == id {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderId", id)
}

func (s *fakeStore) GetAll(_ context.Context) ([]*order.Order, error) {
	return s.orders, nil
}

func (s *fakeStore) Update(_ context.Context, _ *order.Order) error {
	return nil
}

// menuPort adapts fakeStore to ports.MenuStore.
type menuPort struct{ s *fakeStore }

func (p menuPort) Get(_ context.Context, id int) (*menu.Item, error) {
	for _, item := range p.s.items {
		if item.ID() == id {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("itemId", id)
}

func (p menuPort) GetAll(_ context.Context) ([]*menu.Item, error) {
	return p.s.items, nil
}

func (p menuPort) Update(_ context.Context, _ *menu.Item) error {
	return nil
}

func (s *fakeStore) AddWaiterNotification(_ context.Context, n *notification.WaiterNotification) error {
	s.waiter = append(s.waiter, n)
	return nil
}

func (s *fakeStore) AddTableCall(_ context.Context, call *notification.TableCall) error {
	s.calls = append(s.calls, call)
	return nil
}

func (s *fakeStore) GetWaiterNotifications(_ context.Context) ([]*notification.WaiterNotification, error) {
	return s.waiter, nil
}

func (s *fakeStore) GetTableCalls(_ context.Context) ([]*notification.TableCall, error) {
	return s.calls, nil
}

func (s *fakeStore) RemoveWaiterNotification(_ context.Context, id kernel.UUID) error {
	for i, n := range s.waiter {
		if n.ID().IsEqual(id) {
			s.waiter = append(s.waiter[:i], s.waiter[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("notificationId", id.String())
}

func (s *fakeStore) RemoveTableCall(_ context.Context, id kernel.UUID) error {
	for i, c := range s.calls {
		if c.ID().IsEqual(id) {
			s.calls = append(s.calls[:i], s.calls[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("tableCallId", id.String())
}

func (s *fakeStore) Balance(_ context.Context, customer string) (decimal.Decimal, error) {
	return s.balances[customer], nil
}

func (s *fakeStore) SetBalance(_ context.Context, customer string, balance decimal.Decimal) error {
	s.balances[customer] = balance
	return nil
}
