package media

import (
	"context"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"
	"github.com/Vittal-Dev1/Tentacao/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, req port.UploadRequest) (*domain.MediaItem, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(*domain.MediaItem), args.Error(1)
}

func (m *MockMediaService) List(ctx context.Context, category *domain.Category, limit int) ([]domain.MediaItem, error) {
	args := m.Called(ctx, category, limit)
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *MockMediaService) Latest(ctx context.Context, category domain.Category) (*domain.MediaItem, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(*domain.MediaItem), args.Error(1)
}

func (m *MockMediaService) UpdateDescription(ctx context.Context, id uuid.UUID, description string) (*domain.MediaItem, error) {
	args := m.Called(ctx, id, description)
	return args.Get(0).(*domain.MediaItem), args.Error(1)
}

func (m *MockMediaService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
