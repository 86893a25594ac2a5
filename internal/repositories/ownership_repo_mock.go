package repositories

import (
	"sync"

	"meeples/internal/models"

	"github.com/google/uuid"
)

// MockOwnershipRepository is an in-memory implementation of
// OwnershipRepository.
type MockOwnershipRepository struct {
	ownerships []models.Ownership
	mu         sync.RWMutex
}

// NewMockOwnershipRepository creates a new instance of
// MockOwnershipRepository.
func NewMockOwnershipRepository() *MockOwnershipRepository {
	return &MockOwnershipRepository{}
}

// Create adds a new ownership record.
func (r *MockOwnershipRepository) Create(ownership *models.Ownership) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ownership.ID == "" {
		ownership.ID = uuid.New().String()
	}
	r.ownerships = append(r.ownerships, *ownership)
	return nil
}

// GetByGameID returns the ownership records for a game in insertion order.
func (r *MockOwnershipRepository) GetByGameID(gameID string) ([]models.Ownership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]models.Ownership, 0)
	for _, o := range r.ownerships {
		if o.GameID == gameID {
			matches = append(matches, o)
		}
	}
	return matches, nil
}

// GetByUserID returns the ownership records for a user in insertion order.
func (r *MockOwnershipRepository) GetByUserID(userID string) ([]models.Ownership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]models.Ownership, 0)
	for _, o := range r.ownerships {
		if o.UserID == userID {
			matches = append(matches, o)
		}
	}
	return matches, nil
}
