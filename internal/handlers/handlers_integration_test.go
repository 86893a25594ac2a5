package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"meeples/internal/handlers"
	"meeples/internal/middleware"
	"meeples/internal/models"
	"meeples/internal/repositories"
	"meeples/internal/seed"
	"meeples/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp builds a Fiber app over an in-memory SQLite database seeded with
// the demo data, with no artificial latency and no message broker.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	err = db.AutoMigrate(&models.Game{}, &models.User{}, &models.Ownership{}, &models.Request{})
	assert.NoError(t, err)

	gameRepo := repositories.NewGORMGameRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	ownershipRepo := repositories.NewGORMOwnershipRepository(db)
	requestRepo := repositories.NewGORMRequestRepository(db)
	sessionStore, err := repositories.NewGORMSessionStore(db)
	assert.NoError(t, err)

	verifier := services.BcryptVerifier{}
	err = seed.Apply(gameRepo, userRepo, ownershipRepo, requestRepo, verifier)
	assert.NoError(t, err)

	catalogService := services.NewCatalogService(gameRepo, userRepo, ownershipRepo, requestRepo, services.NoDelay)
	requestService := services.NewRequestService(requestRepo, userRepo, gameRepo, nil, services.NoDelay)
	authService := services.NewAuthService(userRepo, sessionStore, verifier, jwtSecret, services.NoDelay)

	authHandler := handlers.NewAuthHandler(authService)
	gameHandler := handlers.NewGameHandler(catalogService)
	userHandler := handlers.NewUserHandler(catalogService)
	requestHandler := handlers.NewRequestHandler(requestService, catalogService)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")

	authHandler.RegisterRoutes(apiV1)
	gameHandler.RegisterRoutes(apiV1)
	userHandler.RegisterRoutes(apiV1)

	protectedRoutes := apiV1.Group("", middleware.AuthRequired(authService))
	authHandler.RegisterProtectedRoutes(protectedRoutes)
	requestHandler.RegisterRoutes(protectedRoutes)

	return app
}

// TestMain runs setup and teardown for all tests.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}, token string) *http.Response {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, app *fiber.App, path string, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func loginAs(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := postJSON(t, app, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": seed.DemoPassword,
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	resp.Body.Close()
	assert.NotEmpty(t, loginResp.Token)
	return loginResp.Token
}

func TestLoginWithSeededCredentials(t *testing.T) {
	app := setupApp(t)

	// Seeded demo credentials work.
	resp := postJSON(t, app, "/api/v1/auth/login", map[string]string{
		"email":    "alex@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	resp.Body.Close()
	assert.Equal(t, "user1", loginResp.User.ID)
	assert.Equal(t, "Alex Chen", loginResp.User.DisplayName)
	assert.NotEmpty(t, loginResp.Token)

	// Wrong password is rejected.
	resp = postJSON(t, app, "/api/v1/auth/login", map[string]string{
		"email":    "alex@example.com",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestCatalogEndpoints(t *testing.T) {
	app := setupApp(t)

	// Full catalog, seeded order.
	resp := getJSON(t, app, "/api/v1/games", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var games []models.Game
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&games))
	resp.Body.Close()
	assert.Len(t, games, 4)
	assert.Equal(t, "Wingspan", games[0].Title)

	// Single game.
	resp = getJSON(t, app, "/api/v1/games/1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var game models.Game
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&game))
	resp.Body.Close()
	assert.Equal(t, "Wingspan", game.Title)

	// Unknown game.
	resp = getJSON(t, app, "/api/v1/games/999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Tag search, case-insensitive.
	resp = getJSON(t, app, "/api/v1/games/search?q=BIRDS", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var results []models.Game
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&results))
	resp.Body.Close()
	assert.Len(t, results, 1)
	assert.Equal(t, "Wingspan", results[0].Title)

	// Empty query yields an empty list, not the catalog.
	resp = getJSON(t, app, "/api/v1/games/search?q=", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	results = nil
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&results))
	resp.Body.Close()
	assert.Empty(t, results)

	// Owners of Wingspan, joined with their user records.
	resp = getJSON(t, app, "/api/v1/games/1/owners", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var owners []models.OwnershipWithOwner
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&owners))
	resp.Body.Close()
	assert.Len(t, owners, 1)
	assert.Equal(t, "own1", owners[0].ID)
	assert.Equal(t, "Alex Chen", owners[0].User.DisplayName)

	// Nearby users: everyone, with no credentials leaked.
	resp = getJSON(t, app, "/api/v1/users/nearby", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var users []models.User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	resp.Body.Close()
	assert.Len(t, users, 3)

	// A user's shelf joined with games.
	resp = getJSON(t, app, "/api/v1/users/user1/ownerships", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var shelf []models.OwnershipWithGame
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&shelf))
	resp.Body.Close()
	assert.Len(t, shelf, 2)
	assert.Equal(t, "Wingspan", shelf[0].Game.Title)
}

func TestRegisterLogoutAndSession(t *testing.T) {
	app := setupApp(t)

	registration := map[string]string{
		"email":       "nina@example.com",
		"password":    "securepassword",
		"displayName": "Nina Patel",
		"city":        "Jaipur, Rajasthan",
	}
	resp := postJSON(t, app, "/api/v1/auth/register", registration, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var registerResp struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&registerResp))
	resp.Body.Close()
	assert.NotEmpty(t, registerResp.User.ID)
	assert.Equal(t, "N", registerResp.User.Avatar)
	assert.Equal(t, 5.0, registerResp.User.Rating)
	assert.NotEmpty(t, registerResp.Token)

	// Registration establishes a session.
	resp = getJSON(t, app, "/api/v1/auth/session", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var sessionResp struct {
		User models.User `json:"user"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&sessionResp))
	resp.Body.Close()
	assert.Equal(t, registerResp.User.ID, sessionResp.User.ID)

	// Duplicate registration is rejected.
	resp = postJSON(t, app, "/api/v1/auth/register", registration, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Malformed registration is rejected up front.
	resp = postJSON(t, app, "/api/v1/auth/register", map[string]string{
		"email":       "not-an-email",
		"password":    "x",
		"displayName": "",
		"city":        "",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Logout clears the session.
	resp = postJSON(t, app, "/api/v1/auth/logout", map[string]string{}, registerResp.Token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = getJSON(t, app, "/api/v1/auth/session", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestRequestLifecycle(t *testing.T) {
	app := setupApp(t)

	// Sarah borrows Catan from Alex.
	token := loginAs(t, app, "sarah@example.com")

	resp := postJSON(t, app, "/api/v1/requests", map[string]string{
		"lenderId":       "user1",
		"gameId":         "2",
		"startDate":      "2024-02-01",
		"endDate":        "2024-02-08",
		"meetupLocation": "Central Park, Jaipur",
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Request
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "req1", created.ID)
	assert.Equal(t, models.RequestStatusPending, created.Status)
	assert.Equal(t, "user2", created.BorrowerID, "borrower identity comes from the token")

	// The new request shows up alongside the seeded active loan.
	resp = getJSON(t, app, "/api/v1/requests", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var requests []models.Request
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&requests))
	resp.Body.Close()
	assert.Len(t, requests, 2)
	ids := []string{requests[0].ID, requests[1].ID}
	assert.Contains(t, ids, "req1")
	assert.Contains(t, ids, created.ID)

	// Borrowing your own copy is rejected.
	resp = postJSON(t, app, "/api/v1/requests", map[string]string{
		"lenderId": "user2",
		"gameId":   "3",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Unknown game is a 404.
	resp = postJSON(t, app, "/api/v1/requests", map[string]string{
		"lenderId": "user1",
		"gameId":   "999",
	}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Lifecycle: pending -> accepted -> active is fine; skipping ahead is not.
	resp = postJSON(t, app, "/api/v1/requests", map[string]string{}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "requests require authentication")
	resp.Body.Close()

	patch := func(id, status string) *http.Response {
		body, _ := json.Marshal(map[string]string{"status": status})
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/"+id+"/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		r, err := app.Test(req, -1)
		assert.NoError(t, err)
		return r
	}

	resp = patch(created.ID, models.RequestStatusReturned)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "pending cannot jump to returned")
	resp.Body.Close()

	resp = patch(created.ID, models.RequestStatusAccepted)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = patch(created.ID, models.RequestStatusActive)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = patch("missing", models.RequestStatusAccepted)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
