package repositories

import (
	"meeples/internal/models"
)

// RequestRepository defines the interface for borrow-request data access.
// Requests are append-only: created, status-updated, never deleted.
type RequestRepository interface {
	Create(request *models.Request) error
	GetByID(id string) (*models.Request, error)
	GetByUserID(userID string) ([]models.Request, error)
	UpdateStatus(id string, status string) error
}
