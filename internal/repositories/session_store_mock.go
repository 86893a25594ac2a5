package repositories

import (
	"fmt"
	"sync"

	"meeples/internal/models"
)

// MockSessionStore is an in-memory implementation of SessionStore.
type MockSessionStore struct {
	user *models.User
	mu   sync.RWMutex
}

// NewMockSessionStore creates a new instance of MockSessionStore.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{}
}

// Save stores the user record.
func (s *MockSessionStore) Save(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := *user
	s.user = &u
	return nil
}

// Load returns the stored user record, or ErrNotFound when absent.
func (s *MockSessionStore) Load() (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil, fmt.Errorf("session record under %s: %w", SessionKey, ErrNotFound)
	}
	u := *s.user
	return &u, nil
}

// Clear removes the stored record. Clearing an absent record is not an error.
func (s *MockSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	return nil
}
