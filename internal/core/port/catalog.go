package port

import (
	"context"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"

	"github.com/google/uuid"
)

// MediaCatalog is an interface to define the media metadata index. All three
// backends (JSON file, relational table, blob-held JSON document) implement
// the same category-scoped, newest-first semantics.
type MediaCatalog interface {
	// List returns all items, optionally filtered to one category, sorted by
	// CreatedAt descending. An empty result is not an error.
	List(ctx context.Context, category *domain.Category) ([]domain.MediaItem, error)
	// Get looks up a single item; returns domain.ErrMediaNotFound when absent.
	Get(ctx context.Context, id uuid.UUID) (*domain.MediaItem, error)
	// Insert stores a caller-populated item and returns it unchanged.
	Insert(ctx context.Context, item domain.MediaItem) (*domain.MediaItem, error)
	// UpdateDescription updates only the description field; returns
	// domain.ErrMediaNotFound when absent.
	UpdateDescription(ctx context.Context, id uuid.UUID, description string) (*domain.MediaItem, error)
	// Delete removes an item. Deleting a non-existent id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteMany removes every listed id, with the same idempotence as Delete.
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
}
