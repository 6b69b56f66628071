package media

import (
	"context"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"

	"github.com/google/uuid"
)

// UpdateDescription edits only the description of an existing item
func (m *mediaService) UpdateDescription(ctx context.Context, id uuid.UUID, description string) (*domain.MediaItem, error) {
	return m.catalog.UpdateDescription(ctx, id, description)
}
