package commands_test

import (
	"testing"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/account"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTokenIssuer mints a predictable token so assertions do not depend on
// real signing.
type stubTokenIssuer struct {
	lastUsername string
	lastRole     account.Role
}

func (i *stubTokenIssuer) Issue(username string, role account.Role) (string, error) {
	i.lastUsername = username
	i.lastRole = role
	return "token-" + username, nil
}

func TestLoginCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should authenticate a valid credential pair", func(t *testing.T) {
		s := newSeededStore()
		seedAccounts(t, s, account.PlanUnlimited)
		issuer := &stubTokenIssuer{}
		h := commands.NewLoginCommandHandler(accountPort{s}, issuer)

		cmd, err := commands.NewLoginCommand("waiter", "password123")
		require.NoError(t, err)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "waiter", result.Username)
		assert.Equal(t, account.RoleWaiter, result.Role)
		assert.Equal(t, "token-waiter", result.Token)
		assert.Equal(t, account.RoleWaiter, issuer.lastRole)
	})

	t.Run("should fail with a wrong password", func(t *testing.T) {
		s := newSeededStore()
		seedAccounts(t, s, account.PlanUnlimited)
		h := commands.NewLoginCommandHandler(accountPort{s}, &stubTokenIssuer{})

		cmd, err := commands.NewLoginCommand("waiter", "nope")
		require.NoError(t, err)
		_, err = h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("should fail identically for an unknown username", func(t *testing.T) {
		s := newSeededStore()
		seedAccounts(t, s, account.PlanUnlimited)
		h := commands.NewLoginCommandHandler(accountPort{s}, &stubTokenIssuer{})

		cmd, err := commands.NewLoginCommand("ghost", "password123")
		require.NoError(t, err)
		_, err = h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("should reject blank credentials at construction", func(t *testing.T) {
		_, err := commands.NewLoginCommand("", "password123")
		require.Error(t, err)

		_, err = commands.NewLoginCommand("waiter", "")
		require.Error(t, err)
	})
}
