package repositories

import (
	"fmt"
	"sync"
	"time"

	"meeples/internal/models"

	"github.com/google/uuid"
)

// MockRequestRepository is an in-memory implementation of RequestRepository.
type MockRequestRepository struct {
	requests map[string]models.Request
	mu       sync.RWMutex
}

// NewMockRequestRepository creates a new instance of MockRequestRepository.
func NewMockRequestRepository() *MockRequestRepository {
	return &MockRequestRepository{
		requests: make(map[string]models.Request),
	}
}

// Create adds a new borrow request.
func (r *MockRequestRepository) Create(request *models.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	request.CreatedAt = time.Now()
	request.UpdatedAt = time.Now()
	r.requests[request.ID] = *request
	return nil
}

// GetByID returns a request by its ID.
func (r *MockRequestRepository) GetByID(id string) (*models.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, ok := r.requests[id]
	if !ok {
		return nil, fmt.Errorf("request with ID %s: %w", id, ErrNotFound)
	}
	return &request, nil
}

// GetByUserID returns the requests where the user is lender or borrower.
// Order is unspecified.
func (r *MockRequestRepository) GetByUserID(userID string) ([]models.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]models.Request, 0)
	for _, req := range r.requests {
		if req.LenderID == userID || req.BorrowerID == userID {
			matches = append(matches, req)
		}
	}
	return matches, nil
}

// UpdateStatus updates the status of a request.
func (r *MockRequestRepository) UpdateStatus(id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok {
		return fmt.Errorf("request with ID %s: %w", id, ErrNotFound)
	}
	request.Status = status
	request.UpdatedAt = time.Now()
	r.requests[id] = request
	return nil
}
