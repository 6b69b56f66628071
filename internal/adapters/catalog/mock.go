package catalog

import (
	"context"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockMediaCatalog struct {
	mock.Mock
}

func NewMockMediaCatalog() *MockMediaCatalog {
	return &MockMediaCatalog{}
}

func (m *MockMediaCatalog) List(ctx context.Context, category *domain.Category) ([]domain.MediaItem, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *MockMediaCatalog) Get(ctx context.Context, id uuid.UUID) (*domain.MediaItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.MediaItem), args.Error(1)
}

func (m *MockMediaCatalog) Insert(ctx context.Context, item domain.MediaItem) (*domain.MediaItem, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(*domain.MediaItem), args.Error(1)
}

func (m *MockMediaCatalog) UpdateDescription(ctx context.Context, id uuid.UUID, description string) (*domain.MediaItem, error) {
	args := m.Called(ctx, id, description)
	return args.Get(0).(*domain.MediaItem), args.Error(1)
}

func (m *MockMediaCatalog) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMediaCatalog) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}
