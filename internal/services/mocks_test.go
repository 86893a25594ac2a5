package services_test

import (
	"meeples/internal/models"

	"github.com/stretchr/testify/mock"
)

// Testify mocks for the repository interfaces used by the service tests.

type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) GetAll() ([]models.Game, error) {
	args := m.Called()
	return args.Get(0).([]models.Game), args.Error(1)
}

func (m *MockGameRepository) GetByID(id string) (*models.Game, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameRepository) Create(game *models.Game) error {
	args := m.Called(game)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

type MockOwnershipRepository struct {
	mock.Mock
}

func (m *MockOwnershipRepository) Create(ownership *models.Ownership) error {
	args := m.Called(ownership)
	return args.Error(0)
}

func (m *MockOwnershipRepository) GetByGameID(gameID string) ([]models.Ownership, error) {
	args := m.Called(gameID)
	return args.Get(0).([]models.Ownership), args.Error(1)
}

func (m *MockOwnershipRepository) GetByUserID(userID string) ([]models.Ownership, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Ownership), args.Error(1)
}

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(request *models.Request) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockRequestRepository) GetByID(id string) (*models.Request, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Request), args.Error(1)
}

func (m *MockRequestRepository) GetByUserID(userID string) ([]models.Request, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Request), args.Error(1)
}

func (m *MockRequestRepository) UpdateStatus(id string, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}
