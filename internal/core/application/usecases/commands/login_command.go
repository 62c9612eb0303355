package commands

import (
	"context"
	"errors"

	"tableside/internal/core/domain/model/account"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var (
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)

	// ErrInvalidCredentials is returned for an unknown username or a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// TokenIssuer mints a demo session token for an authenticated account.
// Implemented by the auth adapter; this is a stub credential flow, not
// identity management.
type TokenIssuer interface {
	Issue(username string, role account.Role) (string, error)
}

// LoginCommand is a credential check against the in-memory account store.
type LoginCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a login request.
func NewLoginCommand(username, password string) (LoginCommand, error) {
	if username == "" {
		return LoginCommand{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return LoginCommand{}, errs.NewValueIsRequiredError("password")
	}
	return LoginCommand{username: username, password: password, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Username returns the login name.
func (c LoginCommand) Username() string {
	return c.username
}

// LoginResult carries the authenticated identity and its demo token.
type LoginResult struct {
	Username string
	Role     account.Role
	Token    string
}

// LoginCommandHandler checks credentials and issues a demo token.
type LoginCommandHandler struct {
	accountStore ports.AccountStore
	tokens       TokenIssuer
}

// NewLoginCommandHandler creates a handler for logins.
func NewLoginCommandHandler(accountStore ports.AccountStore, tokens TokenIssuer) LoginCommandHandler {
	return LoginCommandHandler{accountStore: accountStore, tokens: tokens}
}

// Handle processes the login. Unknown usernames and wrong passwords both
// fail with ErrInvalidCredentials.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	a, err := h.accountStore.GetByUsername(ctx, cmd.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	if !a.CheckPassword(cmd.password) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := h.tokens.Issue(a.Username(), a.Role())
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Username: a.Username(),
		Role:     a.Role(),
		Token:    token,
	}, nil
}
