package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(category domain.Category, createdAt time.Time) domain.MediaItem {
	return domain.MediaItem{
		ID:        uuid.New(),
		Category:  category,
		ImageURL:  "https://blobs.example.com/" + uuid.New().String() + ".jpg",
		CreatedAt: createdAt,
	}
}

func TestSQLMediaCatalog(t *testing.T) {
	db, cleanup, truncateAll := NewTestDB(t)
	defer cleanup()

	catalog := NewSQLMediaCatalog(db)
	ctx := context.Background()

	t.Run("insert then get", func(t *testing.T) {
		truncateAll()

		item := newItem(domain.CategoryCardapio, time.Now().UTC().Truncate(time.Microsecond))
		item.Description = "cardápio da casa"

		stored, err := catalog.Insert(ctx, item)
		require.NoError(t, err)
		assert.Equal(t, item, *stored)

		got, err := catalog.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, item.ID, got.ID)
		assert.Equal(t, item.Category, got.Category)
		assert.Equal(t, item.Description, got.Description)
		assert.Equal(t, item.ImageURL, got.ImageURL)
		assert.True(t, item.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("insert rejects invalid category", func(t *testing.T) {
		truncateAll()

		item := newItem("SOBREMESA", time.Now())
		_, err := catalog.Insert(ctx, item)
		assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	})

	t.Run("get not found", func(t *testing.T) {
		truncateAll()

		_, err := catalog.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrMediaNotFound)
	})

	t.Run("list sorted newest first with filter", func(t *testing.T) {
		truncateAll()

		base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		a := newItem(domain.CategoryComboDia, base.Add(10*time.Second))
		b := newItem(domain.CategoryComboDia, base.Add(20*time.Second))
		other := newItem(domain.CategoryCardapio, base.Add(30*time.Second))

		for _, item := range []domain.MediaItem{a, b, other} {
			_, err := catalog.Insert(ctx, item)
			require.NoError(t, err)
		}

		combo := domain.CategoryComboDia
		items, err := catalog.List(ctx, &combo)
		require.NoError(t, err)

		require.Len(t, items, 2)
		assert.Equal(t, b.ID, items[0].ID)
		assert.Equal(t, a.ID, items[1].ID)

		all, err := catalog.List(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("list empty", func(t *testing.T) {
		truncateAll()

		items, err := catalog.List(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("update description only", func(t *testing.T) {
		truncateAll()

		item := newItem(domain.CategoryComboTarde, time.Now().UTC().Truncate(time.Microsecond))
		_, err := catalog.Insert(ctx, item)
		require.NoError(t, err)

		updated, err := catalog.UpdateDescription(ctx, item.ID, "combo da tarde")
		require.NoError(t, err)

		assert.Equal(t, "combo da tarde", updated.Description)
		assert.Equal(t, item.ID, updated.ID)
		assert.Equal(t, item.Category, updated.Category)
		assert.Equal(t, item.ImageURL, updated.ImageURL)
		assert.True(t, item.CreatedAt.Equal(updated.CreatedAt))
	})

	t.Run("update not found", func(t *testing.T) {
		truncateAll()

		_, err := catalog.UpdateDescription(ctx, uuid.New(), "x")
		assert.ErrorIs(t, err, domain.ErrMediaNotFound)
	})

	t.Run("delete idempotent", func(t *testing.T) {
		truncateAll()

		item := newItem(domain.CategoryComboDia, time.Now().UTC())
		_, err := catalog.Insert(ctx, item)
		require.NoError(t, err)

		require.NoError(t, catalog.Delete(ctx, item.ID))
		require.NoError(t, catalog.Delete(ctx, item.ID))

		items, err := catalog.List(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("delete many", func(t *testing.T) {
		truncateAll()

		now := time.Now().UTC()
		a := newItem(domain.CategoryComboDia, now)
		b := newItem(domain.CategoryComboTarde, now)
		keep := newItem(domain.CategoryCardapio, now)

		for _, item := range []domain.MediaItem{a, b, keep} {
			_, err := catalog.Insert(ctx, item)
			require.NoError(t, err)
		}

		require.NoError(t, catalog.DeleteMany(ctx, []uuid.UUID{a.ID, b.ID, uuid.New()}))

		items, err := catalog.List(ctx, nil)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, keep.ID, items[0].ID)
	})
}
