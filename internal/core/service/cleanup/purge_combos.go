package cleanup

import (
	"context"
	"time"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"

	"github.com/google/uuid"
)

// PurgeCombos deletes every COMBO_DIA and COMBO_TARDE item. Blob deletions
// are best-effort; the catalog records go in one bulk delete regardless. The
// returned count is catalog records removed, not blobs removed.
func (c *cleanupService) PurgeCombos(ctx context.Context) (int, error) {

	var combos []domain.MediaItem
	for _, category := range domain.ComboCategories {
		items, err := c.catalog.List(ctx, &category)
		if err != nil {
			return 0, err
		}
		combos = append(combos, items...)
	}

	if len(combos) == 0 {
		c.logger.Info("no combos to purge")
		return 0, nil
	}

	c.logger.Info("purging combos", "count", len(combos))

	ids := make([]uuid.UUID, 0, len(combos))
	for _, item := range combos {
		if err := c.blobs.Delete(ctx, item.ImageURL); err != nil {
			c.logger.Error("failed to delete combo blob", "url", item.ImageURL, "error", err)
		}
		ids = append(ids, item.ID)
	}

	if err := c.catalog.DeleteMany(ctx, ids); err != nil {
		return 0, err
	}

	if err := c.events.Publish(ctx, domain.MediaEvent{
		Type:       domain.MediaEventPurged,
		Purged:     len(ids),
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		c.logger.Error("failed to publish purge event", "error", err)
	}

	return len(ids), nil
}
