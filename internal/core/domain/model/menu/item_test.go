package menu_test

import (
	"testing"

	"tableside/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create valid item in stock", func(t *testing.T) {
		item, err := menu.NewItem(1, "Burger", decimal.NewFromInt(10))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, 1, item.ID())
		assert.Equal(t, "Burger", item.Name())
		assert.True(t, item.Price().Equal(decimal.NewFromInt(10)))
		assert.True(t, item.InStock())
	})

	t.Run("should accept a zero price", func(t *testing.T) {
		item, err := menu.NewItem(1, "Tap Water", decimal.Zero)

		require.NoError(t, err)
		assert.True(t, item.Price().IsZero())
	})

	t.Run("should fail with non-positive id", func(t *testing.T) {
		item, err := menu.NewItem(0, "Burger", decimal.NewFromInt(10))

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "item id")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		item, err := menu.NewItem(1, "", decimal.NewFromInt(10))

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "item name")
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		item, err := menu.NewItem(1, "Burger", decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "price")
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("should fail for nil and zero value items", func(t *testing.T) {
		var nilItem *menu.Item
		require.Error(t, nilItem.Validate())
		assert.Equal(t, menu.ErrItemIsNotConstructed, nilItem.Validate())

		require.Error(t, (&menu.Item{}).Validate())
	})
}

func TestItem_ToggleStock(t *testing.T) {
	t.Run("should be its own inverse", func(t *testing.T) {
		item, _ := menu.NewItem(1, "Fries", decimal.NewFromInt(5))

		item.ToggleStock()
		assert.False(t, item.InStock())

		item.ToggleStock()
		assert.True(t, item.InStock())
	})
}

func TestItem_Clone(t *testing.T) {
	t.Run("should produce an independent copy", func(t *testing.T) {
		item, _ := menu.NewItem(1, "Burger", decimal.NewFromInt(10))
		c := item.Clone()

		c.MarkOutOfStock()

		assert.True(t, item.InStock())
		assert.False(t, c.InStock())
	})

	t.Run("should pass through nil", func(t *testing.T) {
		var item *menu.Item

		assert.Nil(t, item.Clone())
	})
}

func TestItem_MarkOutOfStock(t *testing.T) {
	t.Run("should be idempotent", func(t *testing.T) {
		item, _ := menu.NewItem(1, "Pizza", decimal.NewFromInt(15))

		item.MarkOutOfStock()
		item.MarkOutOfStock()

		assert.False(t, item.InStock())
	})
}
