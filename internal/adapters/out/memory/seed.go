package memory

import (
	"fmt"

	"tableside/internal/core/domain/model/account"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
)

// Demo seed data. The fixed menu, the two open orders and the credential
// set reproduce the demo restaurant this system ships with.

type itemSeed struct {
	id    int
	name  string
	price int64
}

type orderSeed struct {
	id      int
	table   int
	itemIDs []int
}

type accountSeed struct {
	id       int
	username string
	password string
	role     account.Role
	plan     account.Plan
}

var (
	menuSeeds = []itemSeed{
		{1, "Burger", 10},
		{2, "Fries", 5},
		{3, "Pizza", 15},
		{4, "Salad", 8},
	}

	orderSeeds = []orderSeed{
		{1, 1, []int{1, 2}},
		{2, 2, []int{3, 4}},
	}

	accountSeeds = []accountSeed{
		{1, "restaurant", "password123", account.RoleAdmin, account.PlanUnlimited},
		{2, "waiter", "password123", account.RoleWaiter, ""},
		{3, "cook", "password123", account.RoleCook, ""},
		{4, "customer", "password123", account.RoleCustomer, ""},
	}
)

// NewDemoStore creates a store holding the given profile and the demo
// seed: four menu items, two pending orders, the demo credential set and
// a zero voucher balance for the demo customer.
func NewDemoStore(info *restaurant.Info) (*Store, error) {
	s, err := NewStore(info)
	if err != nil {
		return nil, err
	}

	for _, seed := range menuSeeds {
		item, itemErr := menu.NewItem(seed.id, seed.name, decimal.NewFromInt(seed.price))
		if itemErr != nil {
			return nil, fmt.Errorf("seed menu item %d: %w", seed.id, itemErr)
		}
		s.Menu().add(item)
	}

	for _, seed := range orderSeeds {
		o, orderErr := order.NewOrder(seed.id, seed.table, seed.itemIDs)
		if orderErr != nil {
			return nil, fmt.Errorf("seed order %d: %w", seed.id, orderErr)
		}
		s.addOrder(o)
	}

	for _, seed := range accountSeeds {
		a, accErr := account.NewAccount(seed.id, seed.username, seed.password, seed.role, seed.plan)
		if accErr != nil {
			return nil, fmt.Errorf("seed account %q: %w", seed.username, accErr)
		}
		s.addAccount(a)
	}

	s.balances["customer"] = decimal.Zero

	return s, nil
}
