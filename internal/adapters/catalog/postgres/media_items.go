package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"
	"github.com/Vittal-Dev1/Tentacao/internal/core/port"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SQLQuerier is satisfied by *sql.DB and *sql.Tx
type SQLQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqlMediaCatalog struct {
	db SQLQuerier
}

// NewSQLMediaCatalog creates sqlMediaCatalog that implements port.MediaCatalog
func NewSQLMediaCatalog(db SQLQuerier) port.MediaCatalog {
	return &sqlMediaCatalog{
		db: db,
	}
}

// List returns items sorted by created_at descending, optionally filtered
func (s *sqlMediaCatalog) List(ctx context.Context, category *domain.Category) ([]domain.MediaItem, error) {
	query := `SELECT id, category, description, image_url, created_at
              FROM media_items`
	var args []any
	if category != nil {
		query += ` WHERE category = $1`
		args = append(args, string(*category))
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying media items: %w", err)
	}
	defer rows.Close()

	var items []domain.MediaItem
	for rows.Next() {
		item, err := scanMediaItem(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning media item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating media items: %w", err)
	}

	return items, nil
}

// Get finds a single item by id
func (s *sqlMediaCatalog) Get(ctx context.Context, id uuid.UUID) (*domain.MediaItem, error) {
	query := `SELECT id, category, description, image_url, created_at
              FROM media_items
              WHERE id = $1`

	var dbItem dbMediaItem
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&dbItem.ID,
		&dbItem.Category,
		&dbItem.Description,
		&dbItem.ImageURL,
		&dbItem.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMediaNotFound
		}
		return nil, fmt.Errorf("error querying media item: %w", err)
	}

	return dbItem.ToDomain(), nil
}

// Insert creates a new media item row
func (s *sqlMediaCatalog) Insert(ctx context.Context, item domain.MediaItem) (*domain.MediaItem, error) {
	if err := item.ValidateForInsert(); err != nil {
		return nil, err
	}

	query := `INSERT INTO media_items (id, category, description, image_url, created_at)
              VALUES ($1, $2, $3, $4, $5)`

	var description sql.NullString
	if item.Description != "" {
		description = sql.NullString{String: item.Description, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query, item.ID, string(item.Category), description, item.ImageURL, item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error inserting media item: %w", err)
	}

	return &item, nil
}

// UpdateDescription updates only the description column
func (s *sqlMediaCatalog) UpdateDescription(ctx context.Context, id uuid.UUID, description string) (*domain.MediaItem, error) {
	query := `UPDATE media_items
              SET description = $1
              WHERE id = $2
              RETURNING id, category, description, image_url, created_at`

	var desc sql.NullString
	if description != "" {
		desc = sql.NullString{String: description, Valid: true}
	}

	var dbItem dbMediaItem
	err := s.db.QueryRowContext(ctx, query, desc, id).Scan(
		&dbItem.ID,
		&dbItem.Category,
		&dbItem.Description,
		&dbItem.ImageURL,
		&dbItem.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMediaNotFound
		}
		return nil, fmt.Errorf("error updating media item: %w", err)
	}

	return dbItem.ToDomain(), nil
}

// Delete removes an item; a missing id is not an error
func (s *sqlMediaCatalog) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM media_items WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("error deleting media item: %w", err)
	}

	return nil
}

// DeleteMany removes every listed id in one statement
func (s *sqlMediaCatalog) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query := `DELETE FROM media_items WHERE id = ANY($1)`

	if _, err := s.db.ExecContext(ctx, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("error deleting media items: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMediaItem(row rowScanner) (*domain.MediaItem, error) {
	var dbItem dbMediaItem
	err := row.Scan(
		&dbItem.ID,
		&dbItem.Category,
		&dbItem.Description,
		&dbItem.ImageURL,
		&dbItem.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return dbItem.ToDomain(), nil
}

// dbMediaItem represents a media item row
type dbMediaItem struct {
	ID          uuid.UUID      `db:"id"`
	Category    string         `db:"category"`
	Description sql.NullString `db:"description"`
	ImageURL    string         `db:"image_url"`
	CreatedAt   sql.NullTime   `db:"created_at"`
}

// ToDomain converts to domain.MediaItem
func (d *dbMediaItem) ToDomain() *domain.MediaItem {
	item := &domain.MediaItem{
		ID:       d.ID,
		Category: domain.Category(d.Category),
		ImageURL: d.ImageURL,
	}
	if d.Description.Valid {
		item.Description = d.Description.String
	}
	if d.CreatedAt.Valid {
		item.CreatedAt = d.CreatedAt.Time
	}
	return item
}
