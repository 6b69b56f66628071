package domain_test

import (
	"testing"
	"time"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.Category
		wantErr  error
	}{
		{name: "cardapio lowercase", input: "cardapio", expected: domain.CategoryCardapio},
		{name: "cardapio uppercase", input: "CARDAPIO", expected: domain.CategoryCardapio},
		{name: "dia lowercase", input: "dia", expected: domain.CategoryComboDia},
		{name: "dia uppercase", input: "DIA", expected: domain.CategoryComboDia},
		{name: "tarde mixed case", input: "Tarde", expected: domain.CategoryComboTarde},
		{name: "unknown name", input: "manha", wantErr: domain.ErrInvalidCategory},
		{name: "empty", input: "", wantErr: domain.ErrInvalidCategory},
		{name: "canonical name is not a short name", input: "combo_dia", wantErr: domain.ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, err := domain.ResolveCategory(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, category)
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.Category
		wantErr  error
	}{
		{name: "canonical", input: "CARDAPIO", expected: domain.CategoryCardapio},
		{name: "lowercase canonical", input: "combo_dia", expected: domain.CategoryComboDia},
		{name: "mixed case canonical", input: "Combo_Tarde", expected: domain.CategoryComboTarde},
		{name: "short name is not canonical", input: "dia", wantErr: domain.ErrInvalidCategory},
		{name: "unknown", input: "SOBREMESA", wantErr: domain.ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, err := domain.ParseCategory(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, category)
		})
	}
}

func TestMediaItem_ValidateForInsert(t *testing.T) {
	valid := domain.MediaItem{
		ID:        uuid.New(),
		Category:  domain.CategoryComboDia,
		ImageURL:  "https://blobs.example.com/combo_dia_abc.jpg",
		CreatedAt: time.Now(),
	}

	t.Run("valid item", func(t *testing.T) {
		assert.NoError(t, valid.ValidateForInsert())
	})

	t.Run("invalid category", func(t *testing.T) {
		item := valid
		item.Category = "SOBREMESA"
		assert.ErrorIs(t, item.ValidateForInsert(), domain.ErrInvalidCategory)
	})

	t.Run("missing image url", func(t *testing.T) {
		item := valid
		item.ImageURL = ""
		assert.ErrorIs(t, item.ValidateForInsert(), domain.ErrMissingImageURL)
	})
}
