package handlers

import (
	"errors"
	"log"

	"meeples/internal/models"
	"meeples/internal/repositories"
	"meeples/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequestHandler handles HTTP requests for borrow requests. All routes
// require authentication; the borrower identity comes from the token, never
// from the request body.
type RequestHandler struct {
	requestService *services.RequestService
	catalog        *services.CatalogService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(requestService *services.RequestService, catalog *services.CatalogService) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
		catalog:        catalog,
	}
}

// RegisterRoutes registers the borrow-request routes with the Fiber app.
func (h *RequestHandler) RegisterRoutes(router fiber.Router) {
	requestRoutes := router.Group("/requests")
	requestRoutes.Get("/", h.HandleListRequests)
	requestRoutes.Post("/", h.HandleCreateRequest)
	requestRoutes.Patch("/:id/status", h.HandleUpdateRequestStatus)
}

// HandleListRequests returns the requests where the authenticated user is
// lender or borrower.
func (h *RequestHandler) HandleListRequests(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing user identity",
		})
	}

	requests, err := h.catalog.RequestsForUser(userID)
	if err != nil {
		log.Printf("Error listing requests for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve requests",
			"error":   err.Error(),
		})
	}
	return c.JSON(requests)
}

// HandleCreateRequest records a new borrow request for the authenticated
// user.
func (h *RequestHandler) HandleCreateRequest(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing user identity",
		})
	}

	var input models.Request
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	// The authenticated user is always the borrower.
	input.BorrowerID = userID

	created, err := h.requestService.CreateRequest(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Could not create request",
				"error":   err.Error(),
			})
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Could not create request",
				"error":   err.Error(),
			})
		}
		log.Printf("Error creating request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create request",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateRequestStatus moves a request along its lifecycle.
func (h *RequestHandler) HandleUpdateRequestStatus(c *fiber.Ctx) error {
	requestID := c.Params("id")
	var updateData struct {
		Status string `json:"status"`
	}

	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for status update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}
	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for request status update.",
		})
	}

	if err := h.requestService.UpdateRequestStatus(requestID, updateData.Status); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Request not found",
				"error":   err.Error(),
			})
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid status transition",
				"error":   err.Error(),
			})
		}
		log.Printf("Error updating status for request %s: %v", requestID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update request status",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Request status updated",
		"status":  updateData.Status,
	})
}
