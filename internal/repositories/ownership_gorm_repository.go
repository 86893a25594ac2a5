package repositories

import (
	"fmt"

	"meeples/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOwnershipRepository is a GORM implementation of OwnershipRepository.
type GORMOwnershipRepository struct {
	db *gorm.DB
}

// NewGORMOwnershipRepository creates a new instance of
// GORMOwnershipRepository.
func NewGORMOwnershipRepository(db *gorm.DB) *GORMOwnershipRepository {
	return &GORMOwnershipRepository{
		db: db,
	}
}

// Create creates a new ownership record in the database.
func (r *GORMOwnershipRepository) Create(ownership *models.Ownership) error {
	if ownership.ID == "" {
		ownership.ID = uuid.New().String()
	}
	if err := r.db.Create(ownership).Error; err != nil {
		return fmt.Errorf("failed to create ownership: %w", err)
	}
	return nil
}

// GetByGameID retrieves the ownership records for a game.
func (r *GORMOwnershipRepository) GetByGameID(gameID string) ([]models.Ownership, error) {
	var ownerships []models.Ownership
	if err := r.db.Order("id").Find(&ownerships, "game_id = ?", gameID).Error; err != nil {
		return nil, fmt.Errorf("failed to get ownerships for game %s: %w", gameID, err)
	}
	return ownerships, nil
}

// GetByUserID retrieves the ownership records for a user.
func (r *GORMOwnershipRepository) GetByUserID(userID string) ([]models.Ownership, error) {
	var ownerships []models.Ownership
	if err := r.db.Order("id").Find(&ownerships, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get ownerships for user %s: %w", userID, err)
	}
	return ownerships, nil
}
