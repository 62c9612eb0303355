package commands_test

import (
	"testing"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpdateHandler(s *fakeStore) commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(s, menuPort{s}, s)
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderStatusCommand(1, order.Ready)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 1, cmd.OrderID())
		assert.Equal(t, order.Ready, cmd.Status())
	})

	t.Run("should fail with non-positive order id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(0, order.Ready)

		require.Error(t, err)
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(1, order.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var cmd commands.UpdateOrderStatusCommand

		assert.Equal(t, commands.ErrUpdateOrderStatusCommandIsNotConstructed, cmd.Validate())
	})
}

func TestUpdateOrderStatusCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should update only the targeted order", func(t *testing.T) {
		s := newSeededStore()
		h := newUpdateHandler(s)

		cmd, _ := commands.NewUpdateOrderStatusCommand(1, order.Preparing)
		require.NoError(t, h.Handle(ctx, cmd))

		o1, _ := s.Get(ctx, 1)
		o2, _ := s.Get(ctx, 2)
		assert.Equal(t, order.Preparing, o1.Status())
		assert.Equal(t, order.Pending, o2.Status())
	})

	t.Run("should fail with unknown order id and leave state unchanged", func(t *testing.T) {
		s := newSeededStore()
		h := newUpdateHandler(s)

		cmd, _ := commands.NewUpdateOrderStatusCommand(99, order.Ready)
		err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		for _, o := range s.orders {
			assert.Equal(t, order.Pending, o.Status())
		}
		assert.Empty(t, s.waiter)
	})

	t.Run("should cascade no stock to exactly the referenced items", func(t *testing.T) {
		s := newSeededStore()
		h := newUpdateHandler(s)

		cmd, _ := commands.NewUpdateOrderStatusCommand(1, order.NoStock)
		require.NoError(t, h.Handle(ctx, cmd))

		o1, _ := s.Get(ctx, 1)
		assert.Equal(t, order.NoStock, o1.Status())

		mp := menuPort{s}
		for id, wantInStock := range map[int]bool{1: false, 2: false, 3: true, 4: true} {
			item, _ := mp.Get(ctx, id)
			assert.Equal(t, wantInStock, item.InStock(), "item %d", id)
		}
		// No waiter notification for a no-stock transition.
		assert.Empty(t, s.waiter)
	})

	t.Run("should append a notification with the pre-mutation table on ready", func(t *testing.T) {
		s := newSeededStore()
		h := newUpdateHandler(s)

		cmd, _ := commands.NewUpdateOrderStatusCommand(2, order.Ready)
		require.NoError(t, h.Handle(ctx, cmd))

		o2, _ := s.Get(ctx, 2)
		assert.Equal(t, order.Ready, o2.Status())
		require.Len(t, s.waiter, 1)
		assert.Equal(t, 2, s.waiter[0].OrderID())
		assert.Equal(t, o2.Table(), s.waiter[0].Table())
	})

	t.Run("should append a second notification on repeated ready", func(t *testing.T) {
		s := newSeededStore()
		h := newUpdateHandler(s)

		cmd, _ := commands.NewUpdateOrderStatusCommand(2, order.Ready)
		require.NoError(t, h.Handle(ctx, cmd))
		require.NoError(t, h.Handle(ctx, cmd))

		// Re-notification is the documented behavior, not a bug to fix in
		// tests: each ready transition alerts the waiter again.
		require.Len(t, s.waiter, 2)
		assert.False(t, s.waiter[0].ID().IsEqual(s.waiter[1].ID()))
	})

	t.Run("should reject a not constructed command", func(t *testing.T) {
		s := newSeededStore()
		h := newUpdateHandler(s)

		err := h.Handle(ctx, commands.UpdateOrderStatusCommand{})

		require.Error(t, err)
		assert.Equal(t, commands.ErrUpdateOrderStatusCommandIsNotConstructed, err)
	})
}
