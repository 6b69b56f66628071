package media

import (
	"context"
	"time"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"

	"github.com/google/uuid"
)

// Delete removes one item: the blob best-effort, then the catalog record
func (m *mediaService) Delete(ctx context.Context, id uuid.UUID) error {

	item, err := m.catalog.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := m.blobs.Delete(ctx, item.ImageURL); err != nil {
		m.logger.Error("failed to delete blob", "url", item.ImageURL, "error", err)
	}

	if err := m.catalog.Delete(ctx, id); err != nil {
		return err
	}

	m.publish(ctx, domain.MediaEvent{
		Type:       domain.MediaEventDeleted,
		MediaID:    item.ID,
		Category:   item.Category,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}
