package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"
	"github.com/Vittal-Dev1/Tentacao/internal/core/port"

	"github.com/google/uuid"
)

// Catalog is a media catalog backed by a single JSON document on local disk.
// Every call re-reads the file, so the document stays authoritative across
// restarts. Two concurrent mutations can race on the write-back; that is an
// accepted limitation of this backend.
type Catalog struct {
	path string
}

// New creates the data directory and an empty document if missing, and
// returns a Catalog that implements port.MediaCatalog.
func New(path string) (*Catalog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("failed to create catalog file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat catalog file: %w", err)
	}

	return &Catalog{path: path}, nil
}

var _ port.MediaCatalog = (*Catalog)(nil)

// List returns items sorted by CreatedAt descending, optionally filtered
func (c *Catalog) List(_ context.Context, category *domain.Category) ([]domain.MediaItem, error) {
	items, err := c.read()
	if err != nil {
		return nil, err
	}

	filtered := items
	if category != nil {
		filtered = make([]domain.MediaItem, 0, len(items))
		for _, item := range items {
			if item.Category == *category {
				filtered = append(filtered, item)
			}
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	return filtered, nil
}

// Get finds a single item by id
func (c *Catalog) Get(_ context.Context, id uuid.UUID) (*domain.MediaItem, error) {
	items, err := c.read()
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}

	return nil, domain.ErrMediaNotFound
}

// Insert appends a new item and writes the document back
func (c *Catalog) Insert(_ context.Context, item domain.MediaItem) (*domain.MediaItem, error) {
	if err := item.ValidateForInsert(); err != nil {
		return nil, err
	}

	items, err := c.read()
	if err != nil {
		return nil, err
	}

	items = append(items, item)
	if err := c.write(items); err != nil {
		return nil, err
	}

	return &item, nil
}

// UpdateDescription updates only the description field
func (c *Catalog) UpdateDescription(_ context.Context, id uuid.UUID, description string) (*domain.MediaItem, error) {
	items, err := c.read()
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == id {
			items[i].Description = description
			if err := c.write(items); err != nil {
				return nil, err
			}
			return &items[i], nil
		}
	}

	return nil, domain.ErrMediaNotFound
}

// Delete removes an item; a missing id is not an error
func (c *Catalog) Delete(ctx context.Context, id uuid.UUID) error {
	return c.DeleteMany(ctx, []uuid.UUID{id})
}

// DeleteMany removes every listed id in one write
func (c *Catalog) DeleteMany(_ context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	items, err := c.read()
	if err != nil {
		return err
	}

	drop := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := items[:0]
	for _, item := range items {
		if _, ok := drop[item.ID]; !ok {
			kept = append(kept, item)
		}
	}

	return c.write(kept)
}

// legacyDocument is the pre-migration document shape, tolerated on read only
type legacyDocument struct {
	Items []domain.MediaItem `json:"items"`
}

func (c *Catalog) read() ([]domain.MediaItem, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var items []domain.MediaItem
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}

	var legacy legacyDocument
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return legacy.Items, nil
}

func (c *Catalog) write(items []domain.MediaItem) error {
	if items == nil {
		items = []domain.MediaItem{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog file: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	return nil
}
