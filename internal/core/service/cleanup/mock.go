package cleanup

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCleanupService struct {
	mock.Mock
}

func (m *MockCleanupService) PurgeCombos(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
