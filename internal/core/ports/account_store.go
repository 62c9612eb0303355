package ports

import (
	"context"

	"tableside/internal/core/domain/model/account"
)

// AccountStore defines the storage contract for demo accounts.
type AccountStore interface {
	// GetByUsername retrieves an account by login name.
	// Returns an ObjectNotFoundError for an unknown username.
	GetByUsername(ctx context.Context, username string) (*account.Account, error)

	// GetAll retrieves all accounts in creation order.
	GetAll(ctx context.Context) ([]*account.Account, error)

	// Add appends a new account. The username must be unused.
	Add(ctx context.Context, a *account.Account) error

	// Remove deletes an account by id.
	// Returns an ObjectNotFoundError for an unknown id.
	Remove(ctx context.Context, id int) error
}
