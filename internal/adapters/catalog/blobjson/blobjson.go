package blobjson

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"
	"github.com/Vittal-Dev1/Tentacao/internal/core/port"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// docStore abstracts the object holding the catalog document
type docStore interface {
	// Load returns the raw document and whether it exists yet.
	Load(ctx context.Context) ([]byte, bool, error)
	Save(ctx context.Context, data []byte) error
}

// Catalog is a media catalog whose JSON document lives in the object store
// instead of local disk, for deployments without a persistent filesystem.
// Same read-modify-write semantics and race window as the file backend.
type Catalog struct {
	store docStore
}

// New returns a Catalog holding its document under key in the given bucket
func New(client *minio.Client, bucket, key string) *Catalog {
	return &Catalog{store: &minioDoc{client: client, bucket: bucket, key: key}}
}

func newWithStore(store docStore) *Catalog {
	return &Catalog{store: store}
}

var _ port.MediaCatalog = (*Catalog)(nil)

// List returns items sorted by CreatedAt descending, optionally filtered
func (c *Catalog) List(ctx context.Context, category *domain.Category) ([]domain.MediaItem, error) {
	items, err := c.read(ctx)
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
func (c *Catalog) Get(ctx context.Context, id uuid.UUID) (*domain.MediaItem, error) {
	items, err := c.read(ctx)
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
func (c *Catalog) Insert(ctx context.Context, item domain.MediaItem) (*domain.MediaItem, error) {
	if err := item.ValidateForInsert(); err != nil {
		return nil, err
	}

	items, err := c.read(ctx)
	if err != nil {
		return nil, err
	}

	items = append(items, item)
	if err := c.write(ctx, items); err != nil {
		return nil, err
	}

	return &item, nil
}

// UpdateDescription updates only the description field
func (c *Catalog) UpdateDescription(ctx context.Context, id uuid.UUID, description string) (*domain.MediaItem, error) {
	items, err := c.read(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == id {
			items[i].Description = description
			if err := c.write(ctx, items); err != nil {
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
func (c *Catalog) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	items, err := c.read(ctx)
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

	return c.write(ctx, kept)
}

// legacyDocument is the pre-migration document shape, tolerated on read only
type legacyDocument struct {
	Items []domain.MediaItem `json:"items"`
}

func (c *Catalog) read(ctx context.Context) ([]domain.MediaItem, error) {
	data, exists, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	var items []domain.MediaItem
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}

	var legacy legacyDocument
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("failed to parse catalog document: %w", err)
	}
	return legacy.Items, nil
}

func (c *Catalog) write(ctx context.Context, items []domain.MediaItem) error {
	if items == nil {
		items = []domain.MediaItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode catalog document: %w", err)
	}

	return c.store.Save(ctx, data)
}

// minioDoc holds the catalog document as a single object in a minio bucket
type minioDoc struct {
	client *minio.Client
	bucket string
	key    string
}

func (m *minioDoc) Load(ctx context.Context) ([]byte, bool, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, m.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get catalog document: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read catalog document: %w", err)
	}

	return data, true, nil
}

func (m *minioDoc) Save(ctx context.Context, data []byte) error {
	_, err := m.client.PutObject(ctx, m.bucket, m.key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to put catalog document: %w", err)
	}
	return nil
}
