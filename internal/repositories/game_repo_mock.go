package repositories

import (
	"fmt"
	"sync"

	"meeples/internal/models"

	"github.com/google/uuid"
)

// MockGameRepository is an in-memory implementation of GameRepository.
// Records are kept in a slice so the catalog keeps its insertion order.
type MockGameRepository struct {
	games []models.Game
	index map[string]int
	mu    sync.RWMutex
}

// NewMockGameRepository creates a new instance of MockGameRepository.
func NewMockGameRepository() *MockGameRepository {
	return &MockGameRepository{
		index: make(map[string]int),
	}
}

// GetAll returns all games in insertion order.
func (r *MockGameRepository) GetAll() ([]models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gameList := make([]models.Game, len(r.games))
	copy(gameList, r.games)
	return gameList, nil
}

// GetByID returns a game by its ID.
func (r *MockGameRepository) GetByID(id string) (*models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("game with ID %s: %w", id, ErrNotFound)
	}
	game := r.games[i]
	return &game, nil
}

// Create appends a new game to the catalog.
func (r *MockGameRepository) Create(game *models.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if game.ID == "" {
		game.ID = uuid.New().String()
	}
	if i, ok := r.index[game.ID]; ok {
		r.games[i] = *game
		return nil
	}
	r.index[game.ID] = len(r.games)
	r.games = append(r.games, *game)
	return nil
}
