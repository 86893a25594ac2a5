package handlers

import (
	"errors"
	"log"

	"meeples/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for community members.
type UserHandler struct {
	catalog *services.CatalogService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(catalog *services.CatalogService) *UserHandler {
	return &UserHandler{
		catalog: catalog,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/nearby", h.HandleNearbyUsers)
	userRoutes.Get("/:id/ownerships", h.HandleUserOwnerships)
}

// HandleNearbyUsers returns the community members around the caller. Until
// real distance data exists this is every user.
func (h *UserHandler) HandleNearbyUsers(c *fiber.Ctx) error {
	users, err := h.catalog.NearbyUsers()
	if err != nil {
		log.Printf("Error listing nearby users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve users",
			"error":   err.Error(),
		})
	}
	return c.JSON(users)
}

// HandleUserOwnerships returns a user's shelf: their ownership records joined
// with the games.
func (h *UserHandler) HandleUserOwnerships(c *fiber.Ctx) error {
	userID := c.Params("id")
	ownerships, err := h.catalog.OwnershipsForUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrConsistency) {
			log.Printf("Consistency error joining games for user %s: %v", userID, err)
		} else {
			log.Printf("Error getting ownerships for user %s: %v", userID, err)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve ownerships",
			"error":   err.Error(),
		})
	}
	return c.JSON(ownerships)
}
