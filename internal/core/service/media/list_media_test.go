package media_test

import (
	"context"
	"testing"
	"time"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(n int, category domain.Category) []domain.MediaItem {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	items := make([]domain.MediaItem, 0, n)
	// newest first, the order the catalog returns
	for i := n - 1; i >= 0; i-- {
		items = append(items, domain.MediaItem{
			ID:        uuid.New(),
			Category:  category,
			ImageURL:  "https://blobs.example.com/x.jpg",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}
	return items
}

func TestMediaService_List_DefaultLimit(t *testing.T) {
	ctx := context.Background()
	service, mockCatalog, _, _ := newTestService(t)

	mockCatalog.On("List", ctx, (*domain.Category)(nil)).Return(makeItems(15, domain.CategoryComboDia), nil)

	items, err := service.List(ctx, nil, 0)

	require.NoError(t, err)
	assert.Len(t, items, 10)
}

func TestMediaService_List_LimitClampedToMax(t *testing.T) {
	ctx := context.Background()
	service, mockCatalog, _, _ := newTestService(t)

	mockCatalog.On("List", ctx, (*domain.Category)(nil)).Return(makeItems(60, domain.CategoryComboDia), nil)

	items, err := service.List(ctx, nil, 500)

	require.NoError(t, err)
	assert.Len(t, items, 50)
}

func TestMediaService_List_WithCategoryAndLimit(t *testing.T) {
	ctx := context.Background()
	service, mockCatalog, _, _ := newTestService(t)

	combo := domain.CategoryComboTarde
	all := makeItems(5, combo)
	mockCatalog.On("List", ctx, &combo).Return(all, nil)

	items, err := service.List(ctx, &combo, 2)

	require.NoError(t, err)
	require.Len(t, items, 2)
	// the newest two survive the cut
	assert.Equal(t, all[0].ID, items[0].ID)
	assert.Equal(t, all[1].ID, items[1].ID)
}

func TestMediaService_List_Empty(t *testing.T) {
	ctx := context.Background()
	service, mockCatalog, _, _ := newTestService(t)

	mockCatalog.On("List", ctx, (*domain.Category)(nil)).Return([]domain.MediaItem{}, nil)

	items, err := service.List(ctx, nil, 10)

	require.NoError(t, err)
	assert.Empty(t, items)
}
