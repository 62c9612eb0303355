// Package account provides the staff/customer account entity used by the
// demo credential check. Accounts live in process memory only; there is no
// real identity management.
package account

import (
	"errors"
	"fmt"

	"tableside/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was
	// not created through the NewAccount factory method.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
)

// Role names the view an account is entitled to.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleWaiter   Role = "waiter"
	RoleCook     Role = "cook"
	RoleCustomer Role = "customer"
)

// RoleFromString resolves a role name to its Role value.
func RoleFromString(name string) (Role, error) {
	switch Role(name) {
	case RoleAdmin, RoleWaiter, RoleCook, RoleCustomer:
		return Role(name), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", name))
	}
}

// Plan names the subscription tier of the restaurant account. Non-unlimited
// plans cap how many staff accounts the admin may create.
type Plan string

const (
	PlanBasic     Plan = "basic"
	PlanUnlimited Plan = "unlimited"
)

// BasicPlanAccountLimit is the maximum number of staff accounts on a
// non-unlimited plan.
const BasicPlanAccountLimit = 5

// Account is a demo credential record. Passwords are the hard-coded demo
// set and are compared in plain text on purpose.
type Account struct {
	id       int
	username string
	password string
	role     Role
	plan     Plan

	isConstructed bool
}

// NewAccount creates an account with validation. The plan may be empty for
// staff accounts; it is meaningful only on the restaurant admin account.
func NewAccount(id int, username, password string, role Role, plan Plan) (*Account, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("account id", fmt.Errorf("%d is not greater than 0", id))
	}
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return nil, errs.NewValueIsRequiredError("password")
	}
	if _, err := RoleFromString(string(role)); err != nil {
		return nil, err
	}

	return &Account{
		id:            id,
		username:      username,
		password:      password,
		role:          role,
		plan:          plan,
		isConstructed: true,
	}, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (a *Account) ID() int {
	return a.id
}

// Username returns the login name.
func (a *Account) Username() string {
	return a.username
}

// Role returns the role the account is entitled to.
func (a *Account) Role() Role {
	return a.role
}

// Plan returns the subscription tier.
func (a *Account) Plan() Plan {
	return a.plan
}

// CheckPassword reports whether the supplied password matches.
func (a *Account) CheckPassword(password string) bool {
	return a.password == password
}

// CanAddAccount reports whether this account's plan permits creating one
// more staff account given the current count.
func (a *Account) CanAddAccount(currentCount int) bool {
	return a.plan == PlanUnlimited || currentCount < BasicPlanAccountLimit
}
