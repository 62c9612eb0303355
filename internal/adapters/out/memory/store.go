package memory

import (
	"context"
	"fmt"
	"sync"

	"tableside/internal/core/domain/model/account"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/notification"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/model/restaurant"
	"tableside/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Store is the in-process implementation of every storage port. One mutex
// guards all state: handlers mutate several collections in one use case
// (stock cascade, ready notifications) and a single lock keeps those
// mutations atomic with respect to concurrent HTTP requests.
//
// Mutable aggregates (orders, menu items) are handed out as clones and
// written back through Update, which replaces the stored copy under the
// lock. No caller ever holds a pointer into the store's state, so every
// field write happens inside a critical section.
type Store struct {
	mu sync.Mutex

	orders   []*order.Order
	items    []*menu.Item
	waiter   []*notification.WaiterNotification
	calls    []*notification.TableCall
	accounts []*account.Account
	balances map[string]decimal.Decimal
	info     *restaurant.Info
}

// NewStore creates an empty store holding the given restaurant profile.
func NewStore(info *restaurant.Info) (*Store, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	return &Store{
		balances: make(map[string]decimal.Decimal),
		info:     info,
	}, nil
}

func (s *Store) Get(_ context.Context, id int) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID() == id {
			return o.Clone(), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderId", id)
}

func (s *Store) GetAll(_ context.Context) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]*order.Order, len(s.orders))
	for i, o := range s.orders {
		orders[i] = o.Clone()
	}
	return orders, nil
}

// Update replaces the stored order with a clone of the aggregate. The
// caller's copy stays private, so the swap under the lock is the only
// point where its changes become visible.
func (s *Store) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.orders {
		if o.ID() == aggregate.ID() {
			s.orders[i] = aggregate.Clone()
			return nil
		}
	}
	return errs.NewObjectNotFoundError("orderId", aggregate.ID())
}

func (s *Store) addOrder(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
}

func (s *Store) addAccount(a *account.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append(s.accounts, a)
}

// menuStore adapts Store to ports.MenuStore. Order and menu ids share the
// int keyspace, so the two Get methods cannot live on the same receiver.
type menuStore struct{ s *Store }

// Menu returns the store's menu facet.
func (s *Store) Menu() menuStore { //nolint:revive //facet type is intentionally unexported
	return menuStore{s: s}
}

func (m menuStore) Get(_ context.Context, id int) (*menu.Item, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	for _, item := range m.s.items {
		if item.ID() == id {
			return item.Clone(), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("itemId", id)
}

func (m menuStore) GetAll(_ context.Context) ([]*menu.Item, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	items := make([]*menu.Item, len(m.s.items))
	for i, item := range m.s.items {
		items[i] = item.Clone()
	}
	return items, nil
}

func (m menuStore) Update(_ context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	for i, existing := range m.s.items {
		if existing.ID() == item.ID() {
			m.s.items[i] = item.Clone()
			return nil
		}
	}
	return errs.NewObjectNotFoundError("itemId", item.ID())
}

func (m menuStore) add(item *menu.Item) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.items = append(m.s.items, item)
}

func (s *Store) AddWaiterNotification(_ context.Context, n *notification.WaiterNotification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.waiter = append(s.waiter, n)
	return nil
}

func (s *Store) AddTableCall(_ context.Context, call *notification.TableCall) error {
	if err := call.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
	return nil
}

func (s *Store) GetWaiterNotifications(_ context.Context) ([]*notification.WaiterNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := make([]*notification.WaiterNotification, len(s.waiter))
	copy(notifications, s.waiter)
	return notifications, nil
}

func (s *Store) GetTableCalls(_ context.Context) ([]*notification.TableCall, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	calls := make([]*notification.TableCall, len(s.calls))
	copy(calls, s.calls)
	return calls, nil
}

func (s *Store) RemoveWaiterNotification(_ context.Context, id kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.waiter {
		if n.ID().IsEqual(id) {
			s.waiter = append(s.waiter[:i], s.waiter[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("notificationId", id.String())
}

func (s *Store) RemoveTableCall(_ context.Context, id kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.calls {
		if c.ID().IsEqual(id) {
			s.calls = append(s.calls[:i], s.calls[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("tableCallId", id.String())
}

func (s *Store) GetByUsername(_ context.Context, username string) (*account.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.Username() == username {
			return a, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("username", username)
}

// GetAllAccounts retrieves all accounts in creation order. The name avoids
// colliding with the order facet's GetAll on the shared receiver; the
// Accounts facet exposes it under the port's name.
func (s *Store) GetAllAccounts(_ context.Context) ([]*account.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := make([]*account.Account, len(s.accounts))
	copy(accounts, s.accounts)
	return accounts, nil
}

func (s *Store) AddAccount(_ context.Context, a *account.Account) error {
	if err := a.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.accounts {
		if existing.Username() == a.Username() {
			return errs.NewValueIsInvalidErrorWithCause(
				"username",
				fmt.Errorf("%q is already taken", a.Username()),
			)
		}
	}
	s.accounts = append(s.accounts, a)
	return nil
}

func (s *Store) RemoveAccount(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.accounts {
		if a.ID() == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("accountId", id)
}

// accountStore adapts Store to ports.AccountStore.
type accountStore struct{ s *Store }

// Accounts returns the store's account facet.
func (s *Store) Accounts() accountStore { //nolint:revive //facet type is intentionally unexported
	return accountStore{s: s}
}

func (a accountStore) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	return a.s.GetByUsername(ctx, username)
}

func (a accountStore) GetAll(ctx context.Context) ([]*account.Account, error) {
	return a.s.GetAllAccounts(ctx)
}

func (a accountStore) Add(ctx context.Context, acc *account.Account) error {
	return a.s.AddAccount(ctx, acc)
}

func (a accountStore) Remove(ctx context.Context, id int) error {
	return a.s.RemoveAccount(ctx, id)
}

func (s *Store) Balance(_ context.Context, customer string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[customer], nil
}

func (s *Store) SetBalance(_ context.Context, customer string, balance decimal.Decimal) error {
	if balance.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"balance",
			fmt.Errorf("%s is negative", balance),
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[customer] = balance
	return nil
}

// Restaurant port.

func (s *Store) GetInfo(_ context.Context) (*restaurant.Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info, nil
}

func (s *Store) UpdateInfo(_ context.Context, info *restaurant.Info) error {
	if err := info.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = info
	return nil
}

// restaurantStore adapts Store to ports.RestaurantStore.
type restaurantStore struct{ s *Store }

// Restaurant returns the store's profile facet.
func (s *Store) Restaurant() restaurantStore { //nolint:revive //facet type is intentionally unexported
	return restaurantStore{s: s}
}

func (r restaurantStore) Get(ctx context.Context) (*restaurant.Info, error) {
	return r.s.GetInfo(ctx)
}

func (r restaurantStore) Update(ctx context.Context, info *restaurant.Info) error {
	return r.s.UpdateInfo(ctx, info)
}
