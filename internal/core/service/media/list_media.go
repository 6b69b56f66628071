package media

import (
	"context"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"
)

// List returns up to limit items, newest first, optionally filtered to one
// category. Out-of-range limits are clamped rather than rejected.
func (m *mediaService) List(ctx context.Context, category *domain.Category, limit int) ([]domain.MediaItem, error) {

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	items, err := m.catalog.List(ctx, category)
	if err != nil {
		return nil, err
	}

	if len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}
