package media

import (
	"context"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"
)

// Latest returns the newest item of a category
func (m *mediaService) Latest(ctx context.Context, category domain.Category) (*domain.MediaItem, error) {

	if !category.IsValid() {
		return nil, domain.ErrInvalidCategory
	}

	items, err := m.catalog.List(ctx, &category)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, domain.ErrMediaNotFound
	}

	return &items[0], nil
}
