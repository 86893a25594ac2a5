package services

import (
	"fmt"
	"log"

	"meeples/internal/models"
	"meeples/internal/repositories"
	"meeples/pkg/rabbitmq"

	"github.com/google/uuid"
)

// RequestService handles the write side of borrow requests: creation and
// status transitions.
type RequestService struct {
	requestRepo repositories.RequestRepository
	userRepo    repositories.UserRepository
	gameRepo    repositories.GameRepository
	mqClient    *rabbitmq.Client
	delay       Delay
}

// NewRequestService creates a new RequestService. mqClient may be nil; event
// publication is then skipped.
func NewRequestService(
	requestRepo repositories.RequestRepository,
	userRepo repositories.UserRepository,
	gameRepo repositories.GameRepository,
	mqClient *rabbitmq.Client,
	delay Delay,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		gameRepo:    gameRepo,
		mqClient:    mqClient,
		delay:       delay,
	}
}

// CreateRequest validates and stores a new borrow request. The stored request
// always starts pending regardless of the status the caller supplied, and a
// borrower cannot request their own copy.
func (s *RequestService) CreateRequest(input models.Request) (*models.Request, error) {
	s.delay()

	if input.LenderID == "" || input.BorrowerID == "" || input.GameID == "" {
		return nil, fmt.Errorf("lenderId, borrowerId and gameId are required: %w", ErrValidation)
	}
	if input.LenderID == input.BorrowerID {
		return nil, fmt.Errorf("borrower cannot request their own copy: %w", ErrValidation)
	}

	// Referenced records must exist; a dangling id is a caller error, not a
	// store inconsistency.
	if _, err := s.userRepo.GetByID(input.LenderID); err != nil {
		return nil, fmt.Errorf("lender lookup failed: %w", err)
	}
	if _, err := s.userRepo.GetByID(input.BorrowerID); err != nil {
		return nil, fmt.Errorf("borrower lookup failed: %w", err)
	}
	if _, err := s.gameRepo.GetByID(input.GameID); err != nil {
		return nil, fmt.Errorf("game lookup failed: %w", err)
	}

	newRequest := &models.Request{
		ID:             uuid.New().String(),
		LenderID:       input.LenderID,
		BorrowerID:     input.BorrowerID,
		GameID:         input.GameID,
		Status:         models.RequestStatusPending,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		MeetupLocation: input.MeetupLocation,
	}

	if err := s.requestRepo.Create(newRequest); err != nil {
		return nil, fmt.Errorf("failed to create request in repository: %w", err)
	}

	s.publishEvent("request.created", newRequest)

	return newRequest, nil
}

// UpdateRequestStatus moves a request along its lifecycle:
// pending -> accepted|declined, accepted -> active, active -> overdue|returned.
// Any other transition is rejected.
func (s *RequestService) UpdateRequestStatus(id string, status string) error {
	s.delay()

	request, err := s.requestRepo.GetByID(id)
	if err != nil {
		return err
	}
	if !models.ValidRequestTransition(request.Status, status) {
		return fmt.Errorf("cannot move request from %s to %s: %w", request.Status, status, ErrValidation)
	}

	if err := s.requestRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update request status for request %s: %w", id, err)
	}

	request.Status = status
	s.publishEvent("request.status_changed", request)

	return nil
}

func (s *RequestService) publishEvent(event string, request *models.Request) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	payload := map[string]interface{}{
		"requestID":  request.ID,
		"lenderID":   request.LenderID,
		"borrowerID": request.BorrowerID,
		"gameID":     request.GameID,
		"status":     request.Status,
	}
	if err := s.mqClient.PublishRequestEvent(event, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event for request %s: %v", event, request.ID, err)
	} else {
		log.Printf("Successfully published %s event for request %s", event, request.ID)
	}
}
