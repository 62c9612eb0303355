package commands_test

import (
	"testing"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdvanceHandler(s *fakeStore) commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(s, newUpdateHandler(s))
}

func TestAdvanceOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should walk the workflow and alert on the ready step", func(t *testing.T) {
		s := newSeededStore()
		h := newAdvanceHandler(s)
		cmd, _ := commands.NewAdvanceOrderCommand(1)

		require.NoError(t, h.Handle(ctx, cmd))
		o1, _ := s.Get(ctx, 1)
		assert.Equal(t, order.Preparing, o1.Status())
		assert.Empty(t, s.waiter)

		require.NoError(t, h.Handle(ctx, cmd))
		o1, _ = s.Get(ctx, 1)
		assert.Equal(t, order.Ready, o1.Status())
		require.Len(t, s.waiter, 1)
		assert.Equal(t, 1, s.waiter[0].OrderID())

		require.NoError(t, h.Handle(ctx, cmd))
		o1, _ = s.Get(ctx, 1)
		assert.Equal(t, order.Delivered, o1.Status())
		assert.Len(t, s.waiter, 1)
	})

	t.Run("should reject advancing a delivered order and keep state", func(t *testing.T) {
		s := newSeededStore()
		h := newAdvanceHandler(s)
		require.NoError(t, s.orders[0].ChangeStatus(order.Delivered))

		cmd, _ := commands.NewAdvanceOrderCommand(1)
		err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		o1, _ := s.Get(ctx, 1)
		assert.Equal(t, order.Delivered, o1.Status())
		assert.Empty(t, s.waiter)
	})

	t.Run("should keep a no-stock order in place", func(t *testing.T) {
		s := newSeededStore()
		h := newAdvanceHandler(s)
		require.NoError(t, s.orders[0].ChangeStatus(order.NoStock))

		cmd, _ := commands.NewAdvanceOrderCommand(1)
		require.NoError(t, h.Handle(ctx, cmd))

		o1, _ := s.Get(ctx, 1)
		assert.Equal(t, order.NoStock, o1.Status())
	})

	t.Run("should fail with unknown order id", func(t *testing.T) {
		s := newSeededStore()
		h := newAdvanceHandler(s)

		cmd, _ := commands.NewAdvanceOrderCommand(99)
		err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
