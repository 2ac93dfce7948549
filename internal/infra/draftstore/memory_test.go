//go:build unit

package draftstore_test

import (
	"context"
	"testing"
	"time"

	"care-booking/internal/domain/booking"
	"care-booking/internal/infra/draftstore"
	"care-booking/internal/pkg/clock"
	"care-booking/internal/pkg/config"
	"care-booking/internal/usecase/flow"
	"care-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewTestConfig()
	start := time.Date(2025, time.November, 3, 9, 0, 0, 0, time.UTC)

	t.Run("success: load returns an independent copy", func(t *testing.T) {
		store := draftstore.NewMemoryStore(clock.NewMockClock(start), cfg)
		draft := builder.NewDraftBuilder().Build()
		require.NoError(t, store.Save(ctx, draft))

		draft.Topics = append(draft.Topics, "mutated")
		loaded, err := store.Load(ctx, draft.ID)
		require.NoError(t, err)
		assert.NotContains(t, loaded.Topics, "mutated")

		loaded.Step = booking.StepPillarSelection
		again, err := store.Load(ctx, draft.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StepConfirmation, again.Step)
	})

	t.Run("success: save slides the expiry", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		store := draftstore.NewMemoryStore(clk, cfg)
		draft := builder.NewDraftBuilder().Build()
		require.NoError(t, store.Save(ctx, draft))

		clk.Add(cfg.Booking.DraftTTL - time.Minute)
		require.NoError(t, store.Save(ctx, draft))
		clk.Add(cfg.Booking.DraftTTL - time.Minute)

		_, err := store.Load(ctx, draft.ID)
		require.NoError(t, err)
	})

	t.Run("error: expired draft is gone", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		store := draftstore.NewMemoryStore(clk, cfg)
		draft := builder.NewDraftBuilder().Build()
		require.NoError(t, store.Save(ctx, draft))

		clk.Add(cfg.Booking.DraftTTL)
		_, err := store.Load(ctx, draft.ID)
		require.ErrorIs(t, err, flow.ErrDraftNotFound)
	})

	t.Run("success: each save bumps the revision", func(t *testing.T) {
		store := draftstore.NewMemoryStore(clock.NewMockClock(start), cfg)
		draft := builder.NewDraftBuilder().Build()
		require.NoError(t, store.Save(ctx, draft))
		assert.Equal(t, 1, draft.Revision)

		loaded, err := store.Load(ctx, draft.ID)
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, loaded))
		assert.Equal(t, 2, loaded.Revision)
	})

	t.Run("error: save from a stale load conflicts", func(t *testing.T) {
		store := draftstore.NewMemoryStore(clock.NewMockClock(start), cfg)
		require.NoError(t, store.Save(ctx, builder.NewDraftBuilder().Build()))
		draft := builder.NewDraftBuilder().Build()
		require.NoError(t, store.Save(ctx, draft))

		first, err := store.Load(ctx, draft.ID)
		require.NoError(t, err)
		second, err := store.Load(ctx, draft.ID)
		require.NoError(t, err)

		first.Step = booking.StepDateTimeSelection
		require.NoError(t, store.Save(ctx, first))
		second.Step = booking.StepPillarSelection
		err = store.Save(ctx, second)
		require.ErrorIs(t, err, flow.ErrDraftConflict)

		stored, err := store.Load(ctx, draft.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StepDateTimeSelection, stored.Step)
	})

	t.Run("error: save after delete does not resurrect the draft", func(t *testing.T) {
		store := draftstore.NewMemoryStore(clock.NewMockClock(start), cfg)
		draft := builder.NewDraftBuilder().Build()
		require.NoError(t, store.Save(ctx, draft))
		loaded, err := store.Load(ctx, draft.ID)
		require.NoError(t, err)
		require.NoError(t, store.Delete(ctx, draft.ID))

		err = store.Save(ctx, loaded)
		require.ErrorIs(t, err, flow.ErrDraftNotFound)
		_, err = store.Load(ctx, draft.ID)
		require.ErrorIs(t, err, flow.ErrDraftNotFound)
	})

	t.Run("error: deleted and unknown drafts", func(t *testing.T) {
		store := draftstore.NewMemoryStore(clock.NewMockClock(start), cfg)
		draft := builder.NewDraftBuilder().Build()
		require.NoError(t, store.Save(ctx, draft))
		require.NoError(t, store.Delete(ctx, draft.ID))

		_, err := store.Load(ctx, draft.ID)
		require.ErrorIs(t, err, flow.ErrDraftNotFound)

		_, err = store.Load(ctx, uuid.New())
		require.ErrorIs(t, err, flow.ErrDraftNotFound)
		require.NoError(t, store.Delete(ctx, uuid.New()))
	})
}
