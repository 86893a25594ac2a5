package services

import (
	"fmt"
	"strings"

	"meeples/internal/models"
	"meeples/internal/repositories"
)

// CatalogService handles the read side of the catalog: games, ownership
// joins, nearby users and borrow-request listings.
type CatalogService struct {
	gameRepo      repositories.GameRepository
	userRepo      repositories.UserRepository
	ownershipRepo repositories.OwnershipRepository
	requestRepo   repositories.RequestRepository
	delay         Delay
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	gameRepo repositories.GameRepository,
	userRepo repositories.UserRepository,
	ownershipRepo repositories.OwnershipRepository,
	requestRepo repositories.RequestRepository,
	delay Delay,
) *CatalogService {
	return &CatalogService{
		gameRepo:      gameRepo,
		userRepo:      userRepo,
		ownershipRepo: ownershipRepo,
		requestRepo:   requestRepo,
		delay:         delay,
	}
}

// ListGames retrieves the full catalog in insertion order.
func (s *CatalogService) ListGames() ([]models.Game, error) {
	s.delay()
	return s.gameRepo.GetAll()
}

// GetGame retrieves a single game by its ID. No partial matches.
func (s *CatalogService) GetGame(id string) (*models.Game, error) {
	s.delay()
	return s.gameRepo.GetByID(id)
}

// SearchGames matches the query case-insensitively against game titles and
// tags, preserving catalog order. An empty or whitespace query yields an
// empty result, not the full catalog. No ranking.
func (s *CatalogService) SearchGames(query string) ([]models.Game, error) {
	s.delay()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.Game{}, nil
	}

	games, err := s.gameRepo.GetAll()
	if err != nil {
		return nil, err
	}

	matches := make([]models.Game, 0)
	for _, game := range games {
		if gameMatches(game, q) {
			matches = append(matches, game)
		}
	}
	return matches, nil
}

func gameMatches(game models.Game, q string) bool {
	if strings.Contains(strings.ToLower(game.Title), q) {
		return true
	}
	for _, tag := range game.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// OwnershipsForGame joins the ownership records for a game with their owning
// users. A referenced user that does not exist is a consistency violation:
// seeded data guarantees every ownership has an owner.
func (s *CatalogService) OwnershipsForGame(gameID string) ([]models.OwnershipWithOwner, error) {
	s.delay()

	ownerships, err := s.ownershipRepo.GetByGameID(gameID)
	if err != nil {
		return nil, err
	}

	joined := make([]models.OwnershipWithOwner, 0, len(ownerships))
	for _, o := range ownerships {
		user, err := s.userRepo.GetByID(o.UserID)
		if err != nil {
			return nil, fmt.Errorf("ownership %s references missing user %s: %w", o.ID, o.UserID, ErrConsistency)
		}
		joined = append(joined, models.OwnershipWithOwner{
			Ownership: o,
			User:      user.Sanitized(),
		})
	}
	return joined, nil
}

// OwnershipsForUser joins the ownership records for a user with their games.
func (s *CatalogService) OwnershipsForUser(userID string) ([]models.OwnershipWithGame, error) {
	s.delay()

	ownerships, err := s.ownershipRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	joined := make([]models.OwnershipWithGame, 0, len(ownerships))
	for _, o := range ownerships {
		game, err := s.gameRepo.GetByID(o.GameID)
		if err != nil {
			return nil, fmt.Errorf("ownership %s references missing game %s: %w", o.ID, o.GameID, ErrConsistency)
		}
		joined = append(joined, models.OwnershipWithGame{
			Ownership: o,
			Game:      *game,
		})
	}
	return joined, nil
}

// NearbyUsers returns all seeded users. There is no geospatial filtering:
// location data is an approximate token, so "nearby" is everyone until real
// distances exist.
func (s *CatalogService) NearbyUsers() ([]models.User, error) {
	s.delay()

	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	sanitized := make([]models.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}
	return sanitized, nil
}

// RequestsForUser returns the requests where the user is lender or borrower.
// Order is unspecified.
func (s *CatalogService) RequestsForUser(userID string) ([]models.Request, error) {
	s.delay()
	return s.requestRepo.GetByUserID(userID)
}
