package order_test

import (
	"testing"

	"tableside/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(1, 4, []int{1, 2})

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.Equal(t, 1, o.ID())
		assert.Equal(t, 4, o.Table())
		assert.Equal(t, []int{1, 2}, o.ItemIDs())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should fail with non-positive id", func(t *testing.T) {
		o, err := order.NewOrder(0, 4, []int{1})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "order id")
	})

	t.Run("should fail with non-positive table", func(t *testing.T) {
		o, err := order.NewOrder(1, 0, []int{1})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "table")
	})

	t.Run("should fail with empty item set", func(t *testing.T) {
		o, err := order.NewOrder(1, 4, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "order items")
	})

	t.Run("should fail with non-positive item id", func(t *testing.T) {
		o, err := order.NewOrder(1, 4, []int{1, -2})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "order item id")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder(-1, 0, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		// Should contain all validation errors joined
		assert.Contains(t, err.Error(), "order id")
		assert.Contains(t, err.Error(), "table")
		assert.Contains(t, err.Error(), "order items")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass validation for properly constructed order", func(t *testing.T) {
		o, _ := order.NewOrder(1, 1, []int{1})

		require.NoError(t, o.Validate())
	})

	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		o := &order.Order{}

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_ItemIDs(t *testing.T) {
	t.Run("should return a copy of the item ids", func(t *testing.T) {
		o, _ := order.NewOrder(1, 1, []int{1, 2})

		ids := o.ItemIDs()
		ids[0] = 99

		assert.Equal(t, []int{1, 2}, o.ItemIDs())
	})
}

func TestOrder_Clone(t *testing.T) {
	t.Run("should produce an independent copy", func(t *testing.T) {
		o, _ := order.NewOrder(1, 1, []int{1, 2})
		c := o.Clone()

		require.NoError(t, c.ChangeStatus(order.Ready))

		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.Ready, c.Status())
		assert.Equal(t, []int{1, 2}, c.ItemIDs())
	})

	t.Run("should pass through nil", func(t *testing.T) {
		var o *order.Order

		assert.Nil(t, o.Clone())
	})
}

func TestOrder_References(t *testing.T) {
	o, _ := order.NewOrder(1, 1, []int{1, 2})

	assert.True(t, o.References(1))
	assert.True(t, o.References(2))
	assert.False(t, o.References(3))
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should replace the status with a valid value", func(t *testing.T) {
		o, _ := order.NewOrder(1, 1, []int{1})

		require.NoError(t, o.ChangeStatus(order.Ready))

		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should reject an invalid value and keep state", func(t *testing.T) {
		o, _ := order.NewOrder(1, 1, []int{1})

		err := o.ChangeStatus(order.Unknown)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("should walk the full workflow", func(t *testing.T) {
		o, _ := order.NewOrder(1, 1, []int{1})

		require.NoError(t, o.Advance())
		assert.Equal(t, order.Preparing, o.Status())

		require.NoError(t, o.Advance())
		assert.Equal(t, order.Ready, o.Status())

		require.NoError(t, o.Advance())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject advancing past delivered and keep state", func(t *testing.T) {
		o, _ := order.NewOrder(1, 1, []int{1})
		_ = o.ChangeStatus(order.Delivered)

		err := o.Advance()

		require.Error(t, err)
		assert.Equal(t, order.Delivered, o.Status())
	})
}
