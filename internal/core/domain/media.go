package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category represents a media category
type Category string

const (
	CategoryCardapio   Category = "CARDAPIO"
	CategoryComboDia   Category = "COMBO_DIA"
	CategoryComboTarde Category = "COMBO_TARDE"
)

// Categories lists every valid category
var Categories = []Category{CategoryCardapio, CategoryComboDia, CategoryComboTarde}

// ComboCategories lists the categories purged by the cleanup job
var ComboCategories = []Category{CategoryComboDia, CategoryComboTarde}

// IsValid reports whether c is one of the three known categories
func (c Category) IsValid() bool {
	switch c {
	case CategoryCardapio, CategoryComboDia, CategoryComboTarde:
		return true
	}
	return false
}

// ParseCategory parses a canonical category name, case-insensitive
// ("CARDAPIO", "combo_dia", ...)
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(s))
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// ResolveCategory maps the public short names used by the gallery endpoints
// ("cardapio", "dia", "tarde") to canonical categories, case-insensitive
func ResolveCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "cardapio":
		return CategoryCardapio, nil
	case "dia":
		return CategoryComboDia, nil
	case "tarde":
		return CategoryComboTarde, nil
	}
	return "", ErrInvalidCategory
}

// MediaItem represents a catalogued image. The struct is also the persisted
// JSON shape of the file-backed catalog, hence the tags.
type MediaItem struct {
	ID          uuid.UUID `json:"id"`
	Category    Category  `json:"category"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// ValidateForInsert checks the invariants every catalog backend enforces on insert
func (m *MediaItem) ValidateForInsert() error {
	if !m.Category.IsValid() {
		return ErrInvalidCategory
	}
	if m.ImageURL == "" {
		return ErrMissingImageURL
	}
	return nil
}
