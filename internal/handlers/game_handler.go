package handlers

import (
	"errors"
	"fmt"
	"log"

	"meeples/internal/repositories"
	"meeples/internal/services"

	"github.com/gofiber/fiber/v2"
)

// GameHandler handles HTTP requests for the game catalog.
type GameHandler struct {
	catalog *services.CatalogService
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(catalog *services.CatalogService) *GameHandler {
	return &GameHandler{
		catalog: catalog,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *GameHandler) RegisterRoutes(router fiber.Router) {
	gameRoutes := router.Group("/games")
	gameRoutes.Get("/", h.HandleListGames)
	gameRoutes.Get("/search", h.HandleSearchGames)
	gameRoutes.Get("/:id", h.HandleGetGame)
	gameRoutes.Get("/:id/owners", h.HandleGameOwners)
}

// HandleListGames returns the full catalog.
func (h *GameHandler) HandleListGames(c *fiber.Ctx) error {
	games, err := h.catalog.ListGames()
	if err != nil {
		log.Printf("Error listing games: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve games",
			"error":   err.Error(),
		})
	}
	return c.JSON(games)
}

// HandleSearchGames filters the catalog by the q query parameter. An empty
// query returns an empty list.
func (h *GameHandler) HandleSearchGames(c *fiber.Ctx) error {
	games, err := h.catalog.SearchGames(c.Query("q"))
	if err != nil {
		// Search degrades to an empty result rather than failing the page.
		log.Printf("Error searching games for %q: %v", c.Query("q"), err)
		return c.JSON([]interface{}{})
	}
	return c.JSON(games)
}

// HandleGetGame returns a single game by its ID.
func (h *GameHandler) HandleGetGame(c *fiber.Ctx) error {
	gameID := c.Params("id")
	game, err := h.catalog.GetGame(gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Game with ID %s not found", gameID),
			})
		}
		log.Printf("Error getting game %s: %v", gameID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve game",
			"error":   err.Error(),
		})
	}
	return c.JSON(game)
}

// HandleGameOwners returns the ownership records for a game joined with their
// owners.
func (h *GameHandler) HandleGameOwners(c *fiber.Ctx) error {
	gameID := c.Params("id")
	owners, err := h.catalog.OwnershipsForGame(gameID)
	if err != nil {
		if errors.Is(err, services.ErrConsistency) {
			// A dangling owner reference is a seeding bug, not a user error.
			log.Printf("Consistency error joining owners for game %s: %v", gameID, err)
		} else {
			log.Printf("Error getting owners for game %s: %v", gameID, err)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve owners",
			"error":   err.Error(),
		})
	}
	return c.JSON(owners)
}
