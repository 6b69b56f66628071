package port

import (
	"context"
	"io"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"

	"github.com/google/uuid"
)

// UploadRequest carries the inputs of an admin image upload
type UploadRequest struct {
	File        io.Reader
	Filename    string
	Size        int64
	ContentType string
	Category    domain.Category
	Description string
}

// MediaService is an interface to define the media workflows exposed to the
// HTTP layer
type MediaService interface {
	// Upload stores the image bytes and records a new catalog entry. For
	// CARDAPIO it first replaces any existing menu image.
	Upload(ctx context.Context, req UploadRequest) (*domain.MediaItem, error)
	// List returns up to limit items, newest first, optionally filtered.
	List(ctx context.Context, category *domain.Category, limit int) ([]domain.MediaItem, error)
	// Latest returns the newest item of a category, or domain.ErrMediaNotFound.
	Latest(ctx context.Context, category domain.Category) (*domain.MediaItem, error)
	// UpdateDescription edits only the description of an existing item.
	UpdateDescription(ctx context.Context, id uuid.UUID, description string) (*domain.MediaItem, error)
	// Delete removes one item: best-effort blob delete, then the record.
	Delete(ctx context.Context, id uuid.UUID) error
}
