package storage

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/models"
)

// Storage is the persistence surface the handlers and the admin CLI use.
type Storage interface {
	CreateGrievance(g *models.Grievance) error
	ListGrievances() ([]models.Grievance, error)
	GetGrievanceByID(id uint) (*models.Grievance, error)
	SetResponse(id uint, response string) error
	MarkResolved(id uint) error
}

// Service is the gorm-backed Storage implementation.
type Service struct {
	DB *gorm.DB
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// CreateGrievance inserts a new grievance. Status defaults to Pending via
// the model hook; CreatedAt is assigned by gorm at insert and never touched
// again.
func (s *Service) CreateGrievance(g *models.Grievance) error {
	if err := s.DB.Create(g).Error; err != nil {
		log.Printf("ERROR: Failed to create grievance %q: %v", g.Title, err)
		return err
	}
	return nil
}

// ListGrievances returns every grievance, newest first.
func (s *Service) ListGrievances() ([]models.Grievance, error) {
	var grievances []models.Grievance
	if err := s.DB.Order("created_at DESC").Find(&grievances).Error; err != nil {
		log.Printf("ERROR: Failed to list grievances: %v", err)
		return nil, err
	}
	return grievances, nil
}

// GetGrievanceByID returns a single grievance, or nil without error when the
// id does not exist.
func (s *Service) GetGrievanceByID(id uint) (*models.Grievance, error) {
	var g models.Grievance
	err := s.DB.First(&g, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to get grievance %d: %v", id, err)
		return nil, err
	}
	return &g, nil
}

// SetResponse overwrites the response text for a grievance. Updating a
// nonexistent id affects zero rows and is a silent no-op.
func (s *Service) SetResponse(id uint, response string) error {
	err := s.DB.Model(&models.Grievance{}).
		Where("id = ?", id).
		Update("response", response).Error
	if err != nil {
		log.Printf("ERROR: Failed to set response for grievance %d: %v", id, err)
	}
	return err
}

// MarkResolved sets the status to Resolved. Re-resolving an already resolved
// grievance rewrites the same value, so the operation is idempotent.
func (s *Service) MarkResolved(id uint) error {
	err := s.DB.Model(&models.Grievance{}).
		Where("id = ?", id).
		Update("status", models.StatusResolved).Error
	if err != nil {
		log.Printf("ERROR: Failed to resolve grievance %d: %v", id, err)
	}
	return err
}
