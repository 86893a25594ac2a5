package repositories

import (
	"meeples/internal/models"
)

// GameRepository defines the interface for game catalog data access.
// GetAll must return games in insertion order; the catalog views depend on a
// stable order.
type GameRepository interface {
	GetAll() ([]models.Game, error)
	GetByID(id string) (*models.Game, error)
	Create(game *models.Game) error
}
