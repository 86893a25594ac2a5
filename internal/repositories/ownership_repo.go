package repositories

import "meeples/internal/models"

// OwnershipRepository defines the interface for ownership data access.
// Results are returned in insertion order.
type OwnershipRepository interface {
	Create(ownership *models.Ownership) error
	GetByGameID(gameID string) ([]models.Ownership, error)
	GetByUserID(userID string) ([]models.Ownership, error)
}
