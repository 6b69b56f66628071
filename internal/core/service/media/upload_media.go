package media

import (
	"context"
	"time"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"
	"github.com/Vittal-Dev1/Tentacao/internal/core/port"

	"github.com/google/uuid"
)

// Upload stores the image bytes and records a new catalog entry. A new
// CARDAPIO image replaces any existing one: old blobs are deleted
// best-effort, old records in one bulk call, before the new insert. The
// replacement is not atomic with the insert.
func (m *mediaService) Upload(ctx context.Context, req port.UploadRequest) (*domain.MediaItem, error) {

	if !req.Category.IsValid() {
		return nil, domain.ErrInvalidCategory
	}

	if req.File == nil || req.Size == 0 {
		return nil, domain.ErrMissingFile
	}

	if req.Category == domain.CategoryCardapio {
		if err := m.replaceCardapio(ctx); err != nil {
			return nil, err
		}
	}

	key := storageKey(string(req.Category), req.Filename)
	url, err := m.blobs.Put(ctx, key, req.File, req.Size, req.ContentType)
	if err != nil {
		return nil, err
	}

	item := domain.MediaItem{
		ID:          uuid.New(),
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    url,
		CreatedAt:   time.Now().UTC(),
	}

	stored, err := m.catalog.Insert(ctx, item)
	if err != nil {
		// The blob already exists at this point; the orphan is accepted.
		return nil, err
	}

	m.publish(ctx, domain.MediaEvent{
		Type:       domain.MediaEventCreated,
		MediaID:    stored.ID,
		Category:   stored.Category,
		OccurredAt: stored.CreatedAt,
	})

	return stored, nil
}

// replaceCardapio removes every existing CARDAPIO item so that at most one
// exists after the upload
func (m *mediaService) replaceCardapio(ctx context.Context) error {
	category := domain.CategoryCardapio
	existing, err := m.catalog.List(ctx, &category)
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		return nil
	}

	m.logger.Info("replacing existing cardapio images", "count", len(existing))

	ids := make([]uuid.UUID, 0, len(existing))
	for _, item := range existing {
		if err := m.blobs.Delete(ctx, item.ImageURL); err != nil {
			m.logger.Error("failed to delete cardapio blob", "url", item.ImageURL, "error", err)
		}
		ids = append(ids, item.ID)
	}

	return m.catalog.DeleteMany(ctx, ids)
}

func (m *mediaService) publish(ctx context.Context, event domain.MediaEvent) {
	if err := m.events.Publish(ctx, event); err != nil {
		m.logger.Error("failed to publish media event", "type", event.Type, "error", err)
	}
}
