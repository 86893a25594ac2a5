// Package seed holds the canonical demo data the application starts with:
// four games, three users, three ownership records and one active loan.
package seed

import (
	"fmt"

	"meeples/internal/models"
	"meeples/internal/repositories"
	"meeples/internal/services"
)

// DemoPassword is the shared credential every seeded user logs in with. It is
// stored bcrypt-hashed; real deployments replace the seed entirely.
const DemoPassword = "password123"

// Games returns the seeded catalog in display order.
func Games() []models.Game {
	return []models.Game{
		{
			ID:          "1",
			Title:       "Wingspan",
			CoverURL:    "/assets/wingspan-cover.jpg",
			MinPlayers:  1,
			MaxPlayers:  5,
			PlaytimeMin: 70,
			Complexity:  models.ComplexityMedium,
			Tags:        []string{"Engine Building", "Birds", "Strategy"},
			Description: "Wingspan is a competitive, medium-weight, card-driven, engine-building board game from Stonemaier Games.",
		},
		{
			ID:          "2",
			Title:       "Catan",
			CoverURL:    "/assets/catan-cover.jpg",
			MinPlayers:  3,
			MaxPlayers:  4,
			PlaytimeMin: 60,
			Complexity:  models.ComplexityEasy,
			Tags:        []string{"Trading", "Building", "Classic"},
			Description: "The classic game of trading, building, and settling the island of Catan.",
		},
		{
			ID:          "3",
			Title:       "Azul",
			CoverURL:    "/assets/azul-cover.jpg",
			MinPlayers:  2,
			MaxPlayers:  4,
			PlaytimeMin: 45,
			Complexity:  models.ComplexityEasy,
			Tags:        []string{"Tile Placement", "Abstract"},
			Description: "Beautiful tile-laying game where players compete to create stunning mosaics.",
		},
		{
			ID:          "4",
			Title:       "Ticket to Ride",
			CoverURL:    "/assets/ticket-to-ride-cover.jpg",
			MinPlayers:  2,
			MaxPlayers:  5,
			PlaytimeMin: 60,
			Complexity:  models.ComplexityEasy,
			Tags:        []string{"Route Building", "Set Collection"},
			Description: "Cross-country train adventure where players collect cards and claim railway routes.",
		},
	}
}

// Users returns the seeded community members. Password is left empty here;
// Apply fills in the hashed demo credential.
func Users() []models.User {
	return []models.User{
		{
			ID:              "user1",
			DisplayName:     "Alex Chen",
			Email:           "alex@example.com",
			Avatar:          "A",
			Bio:             "Board game enthusiast who loves strategy games and hosting game nights!",
			City:            "Jaipur, Rajasthan",
			Rating:          4.8,
			GeoHash:         "tux9qh",
			PreferredGenres: []string{"Strategy", "Engine Building", "Co-op", "Euro"},
		},
		{
			ID:              "user2",
			DisplayName:     "Sarah Wilson",
			Email:           "sarah@example.com",
			Avatar:          "S",
			Bio:             "Love party games and family-friendly board games!",
			City:            "Jaipur, Rajasthan",
			Rating:          4.9,
			GeoHash:         "tux9qk",
			PreferredGenres: []string{"Party", "Family", "Social Deduction"},
		},
		{
			ID:              "user3",
			DisplayName:     "Mike Sharma",
			Email:           "mike@example.com",
			Avatar:          "M",
			Bio:             "Always looking for new games to try!",
			City:            "Jaipur, Rajasthan",
			Rating:          4.7,
			GeoHash:         "tux9qm",
			PreferredGenres: []string{"Adventure", "Thematic", "Deck Building"},
		},
	}
}

// Ownerships returns the seeded ownership records. Every UserID and GameID
// references a record from Users and Games; the ownership joins rely on that.
func Ownerships() []models.Ownership {
	return []models.Ownership{
		{
			ID:                "own1",
			UserID:            "user1",
			GameID:            "1",
			Condition:         models.ConditionLikeNew,
			IsLendable:        true,
			Notes:             "All components included, sleeved cards",
			AvailabilitySlots: []string{"2024-01-15", "2024-01-22", "2024-01-29"},
		},
		{
			ID:                "own2",
			UserID:            "user1",
			GameID:            "2",
			Condition:         models.ConditionWellLoved,
			IsLendable:        false,
			Notes:             "Some wear on box, all pieces present",
			AvailabilitySlots: []string{},
		},
		{
			ID:                "own3",
			UserID:            "user2",
			GameID:            "3",
			Condition:         models.ConditionNew,
			IsLendable:        true,
			Notes:             "Still in shrink wrap",
			AvailabilitySlots: []string{"2024-01-20", "2024-01-27"},
		},
	}
}

// Requests returns the seeded borrow requests.
func Requests() []models.Request {
	return []models.Request{
		{
			ID:             "req1",
			LenderID:       "user1",
			BorrowerID:     "user2",
			GameID:         "1",
			Status:         models.RequestStatusActive,
			StartDate:      "2024-01-10",
			EndDate:        "2024-01-17",
			MeetupLocation: "Central Park, Jaipur",
		},
	}
}

// Apply writes the full seed data set through the given repositories. The
// demo password is hashed once and shared by every seeded user.
func Apply(
	gameRepo repositories.GameRepository,
	userRepo repositories.UserRepository,
	ownershipRepo repositories.OwnershipRepository,
	requestRepo repositories.RequestRepository,
	verifier services.PasswordVerifier,
) error {
	hashed, err := verifier.Hash(DemoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	games := Games()
	for i := range games {
		if err := gameRepo.Create(&games[i]); err != nil {
			return fmt.Errorf("failed to seed game %s: %w", games[i].Title, err)
		}
	}

	users := Users()
	for i := range users {
		users[i].Password = hashed
		if err := userRepo.Create(&users[i]); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", users[i].DisplayName, err)
		}
	}

	ownerships := Ownerships()
	for i := range ownerships {
		if err := ownershipRepo.Create(&ownerships[i]); err != nil {
			return fmt.Errorf("failed to seed ownership %s: %w", ownerships[i].ID, err)
		}
	}

	requests := Requests()
	for i := range requests {
		if err := requestRepo.Create(&requests[i]); err != nil {
			return fmt.Errorf("failed to seed request %s: %w", requests[i].ID, err)
		}
	}

	return nil
}
