package session

import "github.com/stretchr/testify/mock"

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Login(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Verify(token string) error {
	args := m.Called(token)
	return args.Error(0)
}
