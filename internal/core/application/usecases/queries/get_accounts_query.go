package queries

import (
	"context"
	"errors"

	"tableside/internal/core/domain/model/account"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/guard"
)

var (
	ErrGetAccountsQueryIsNotConstructed = errors.New(
		"GetAccountsQuery must be created via NewGetAccountsQuery constructor",
	)
)

// GetAccountsQuery retrieves the account list for the admin screen.
// Passwords never leave the domain model.
type GetAccountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAccountsQuery creates a query to retrieve all accounts.
func NewGetAccountsQuery() GetAccountsQuery {
	return GetAccountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAccountsQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountsQueryIsNotConstructed)
}

// GetAccountsQueryResponse is one account view.
type GetAccountsQueryResponse struct {
	ID       int
	Username string
	Role     account.Role
}

// GetAccountsQueryHandler assembles account views from the account store.
type GetAccountsQueryHandler struct {
	accountStore ports.AccountStore
}

// NewGetAccountsQueryHandler creates a handler for account views.
func NewGetAccountsQueryHandler(accountStore ports.AccountStore) GetAccountsQueryHandler {
	return GetAccountsQueryHandler{accountStore: accountStore}
}

// Handle executes the query.
func (h GetAccountsQueryHandler) Handle(ctx context.Context, query GetAccountsQuery) ([]GetAccountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	accounts, err := h.accountStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]GetAccountsQueryResponse, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, GetAccountsQueryResponse{
			ID:       a.ID(),
			Username: a.Username(),
			Role:     a.Role(),
		})
	}

	return views, nil
}
