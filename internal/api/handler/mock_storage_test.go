package handler_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/models"
)

// MockStorage is a testify mock of the storage.Storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateGrievance(g *models.Grievance) error {
	args := m.Called(g)
	return args.Error(0)
}

func (m *MockStorage) ListGrievances() ([]models.Grievance, error) {
	args := m.Called()
	if grievances, ok := args.Get(0).([]models.Grievance); ok {
		return grievances, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) GetGrievanceByID(id uint) (*models.Grievance, error) {
	args := m.Called(id)
	if g, ok := args.Get(0).(*models.Grievance); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) SetResponse(id uint, response string) error {
	args := m.Called(id, response)
	return args.Error(0)
}

func (m *MockStorage) MarkResolved(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
