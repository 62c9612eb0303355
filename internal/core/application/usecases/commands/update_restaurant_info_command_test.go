package commands_test

import (
	"context"
	"testing"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRestaurantStore struct {
	info *restaurant.Info
}

func (s *fakeRestaurantStore) Get(_ context.Context) (*restaurant.Info, error) {
	return s.info, nil
}

func (s *fakeRestaurantStore) Update(_ context.Context, info *restaurant.Info) error {
	s.info = info
	return nil
}

func TestUpdateRestaurantInfoCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should replace the stored profile", func(t *testing.T) {
		current, err := restaurant.NewInfo("12345", "Sample Restaurant", 10, "#ffffff", "#000000", "")
		require.NoError(t, err)
		s := &fakeRestaurantStore{info: current}
		h := commands.NewUpdateRestaurantInfoCommandHandler(s)

		next, err := restaurant.NewInfo("12345", "Corner Bistro", 6, "#fff8e7", "#22211f", "Scan to order")
		require.NoError(t, err)
		cmd, err := commands.NewUpdateRestaurantInfoCommand(next)
		require.NoError(t, err)

		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, "Corner Bistro", s.info.Name())
		assert.Equal(t, 6, s.info.Tables())
		assert.Equal(t, "Scan to order", s.info.CustomText())
	})

	t.Run("should reject an invalid profile at construction", func(t *testing.T) {
		_, err := restaurant.NewInfo("", "Corner Bistro", 6, "#ffffff", "#000000", "")
		require.Error(t, err)

		_, err = restaurant.NewInfo("12345", "Corner Bistro", 6, "white", "#000000", "")
		require.Error(t, err)
	})

	t.Run("should reject an unconstructed command", func(t *testing.T) {
		h := commands.NewUpdateRestaurantInfoCommandHandler(&fakeRestaurantStore{})

		err := h.Handle(ctx, commands.UpdateRestaurantInfoCommand{})

		require.Error(t, err)
	})
}
