package repositories

import (
	"errors"
	"fmt"

	"meeples/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRequestRepository is a GORM implementation of RequestRepository.
type GORMRequestRepository struct {
	db *gorm.DB
}

// NewGORMRequestRepository creates a new instance of GORMRequestRepository.
func NewGORMRequestRepository(db *gorm.DB) *GORMRequestRepository {
	return &GORMRequestRepository{
		db: db,
	}
}

// Create creates a new request in the database.
func (r *GORMRequestRepository) Create(request *models.Request) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	if err := r.db.Create(request).Error; err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

// GetByID retrieves a request by its ID from the database.
func (r *GORMRequestRepository) GetByID(id string) (*models.Request, error) {
	var request models.Request
	if err := r.db.First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("request with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get request by ID %s: %w", id, err)
	}
	return &request, nil
}

// GetByUserID retrieves the requests where the user is lender or borrower.
func (r *GORMRequestRepository) GetByUserID(userID string) ([]models.Request, error) {
	var requests []models.Request
	if err := r.db.Find(&requests, "lender_id = ? OR borrower_id = ?", userID, userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get requests for user %s: %w", userID, err)
	}
	return requests, nil
}

// UpdateStatus updates the status of a request.
func (r *GORMRequestRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.Request{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update request status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("request with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
