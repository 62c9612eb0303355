package commands

import (
	"context"
	"errors"
	"fmt"

	"tableside/internal/core/domain/model/account"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var (
	ErrAddAccountCommandIsNotConstructed = errors.New(
		"AddAccountCommand must be created via NewAddAccountCommand constructor",
	)
	ErrDeleteAccountCommandIsNotConstructed = errors.New(
		"DeleteAccountCommand must be created via NewDeleteAccountCommand constructor",
	)

	// ErrAccountLimitReached is returned when a non-unlimited plan already
	// holds its maximum number of accounts.
	ErrAccountLimitReached = errors.New("account limit reached, upgrade to unlimited plan to add more accounts")
)

// AddAccountCommand is the admin request to create a staff account. The
// admin's own plan decides whether the account cap applies.
type AddAccountCommand struct { //nolint:recvcheck //using for validation
	adminUsername string
	username      string
	password      string
	role          account.Role

	guard guard.ConstructorGuard
}

// NewAddAccountCommand creates an account creation request.
func NewAddAccountCommand(adminUsername, username, password string, role account.Role) (AddAccountCommand, error) {
	cmd := AddAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if adminUsername == "" {
		return AddAccountCommand{}, errs.NewValueIsRequiredError("admin username")
	}
	if username == "" {
		return AddAccountCommand{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return AddAccountCommand{}, errs.NewValueIsRequiredError("password")
	}
	if _, err := account.RoleFromString(string(role)); err != nil {
		return AddAccountCommand{}, err
	}

	cmd.adminUsername = adminUsername
	cmd.username = username
	cmd.password = password
	cmd.role = role
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddAccountCommand) Validate() error {
	return c.guard.Validate(ErrAddAccountCommandIsNotConstructed)
}

// AdminUsername returns the admin performing the creation.
func (c AddAccountCommand) AdminUsername() string {
	return c.adminUsername
}

// Username returns the login name of the new account.
func (c AddAccountCommand) Username() string {
	return c.username
}

// Password returns the password of the new account.
func (c AddAccountCommand) Password() string {
	return c.password
}

// Role returns the role of the new account.
func (c AddAccountCommand) Role() account.Role {
	return c.role
}

// DeleteAccountCommand is the admin request to remove a staff account.
type DeleteAccountCommand struct { //nolint:recvcheck //using for validation
	accountID int

	guard guard.ConstructorGuard
}

// NewDeleteAccountCommand creates an account deletion request.
func NewDeleteAccountCommand(accountID int) (DeleteAccountCommand, error) {
	if accountID <= 0 {
		return DeleteAccountCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"account id",
			fmt.Errorf("%d is not greater than 0", accountID),
		)
	}
	return DeleteAccountCommand{accountID: accountID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAccountCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAccountCommandIsNotConstructed)
}

// AccountID returns the account to delete.
func (c DeleteAccountCommand) AccountID() int {
	return c.accountID
}

// AccountCommandHandler manages the demo account list: creation under the
// plan cap and deletion by id.
type AccountCommandHandler struct {
	accountStore ports.AccountStore
}

// NewAccountCommandHandler creates a handler for account management.
func NewAccountCommandHandler(accountStore ports.AccountStore) AccountCommandHandler {
	return AccountCommandHandler{accountStore: accountStore}
}

// HandleAdd creates a staff account. On a non-unlimited plan the creation
// fails with ErrAccountLimitReached once the cap is hit.
func (h AccountCommandHandler) HandleAdd(ctx context.Context, cmd AddAccountCommand) (*account.Account, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	admin, err := h.accountStore.GetByUsername(ctx, cmd.AdminUsername())
	if err != nil {
		return nil, err
	}

	existing, err := h.accountStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if !admin.CanAddAccount(len(existing)) {
		return nil, ErrAccountLimitReached
	}

	newID := 1
	for _, a := range existing {
		if a.ID() >= newID {
			newID = a.ID() + 1
		}
	}

	created, err := account.NewAccount(newID, cmd.Username(), cmd.Password(), cmd.Role(), "")
	if err != nil {
		return nil, err
	}
	if err = h.accountStore.Add(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// HandleDelete removes an account by id.
func (h AccountCommandHandler) HandleDelete(ctx context.Context, cmd DeleteAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.accountStore.Remove(ctx, cmd.AccountID())
}
