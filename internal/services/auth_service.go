package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
	"unicode"

	"meeples/internal/models"
	"meeples/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Defaults applied to freshly registered users.
const (
	defaultBio     = "New to the board game community!"
	defaultRating  = 5.0
	defaultGeoHash = "tux9qi"
)

// PasswordVerifier abstracts credential hashing and verification so a
// different scheme can be swapped in without touching the session logic.
type PasswordVerifier interface {
	Hash(password string) (string, error)
	Verify(hashed, password string) error
}

// BcryptVerifier is the production PasswordVerifier.
type BcryptVerifier struct{}

// Hash hashes a plaintext password with bcrypt at the default cost.
func (BcryptVerifier) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify compares a bcrypt hash against a plaintext password.
func (BcryptVerifier) Verify(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

// RegisterInput is the payload for new-user registration.
type RegisterInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"displayName" validate:"required,min=2,max=100"`
	City        string `json:"city" validate:"required,max=100"`
}

// AuthService manages the session: credential verification, registration,
// the current-user reference and its durable persisted record.
type AuthService struct {
	userRepo   repositories.UserRepository
	sessions   repositories.SessionStore
	verifier   PasswordVerifier
	jwtSecret  []byte
	tokenDurat time.Duration
	delay      Delay

	mu      sync.RWMutex
	current *models.User
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userRepo repositories.UserRepository,
	sessions repositories.SessionStore,
	verifier PasswordVerifier,
	jwtSecret string,
	delay Delay,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		sessions:   sessions,
		verifier:   verifier,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
		delay:      delay,
	}
}

// Login authenticates a user by exact email match and password verification.
// On success the user becomes current, the record is persisted and a signed
// token is issued. Failures leave session state untouched and are reported
// as ErrInvalidCredentials without revealing which check failed.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	s.delay()

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := s.verifier.Verify(user.Password, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	sanitized := user.Sanitized()
	if err := s.sessions.Save(&sanitized); err != nil {
		return nil, "", fmt.Errorf("failed to persist session: %w", err)
	}
	s.setCurrent(&sanitized)

	token, err := s.issueToken(&sanitized)
	if err != nil {
		return nil, "", err
	}
	return &sanitized, token, nil
}

// Register creates a new user with a fresh id and community defaults, makes
// them the current user and persists the session record. Email reuse is
// rejected.
func (s *AuthService) Register(data RegisterInput) (*models.User, string, error) {
	s.delay()

	if err := validateRegisterInput(data); err != nil {
		return nil, "", err
	}
	if existing, err := s.userRepo.GetByEmail(data.Email); err == nil && existing != nil {
		return nil, "", fmt.Errorf("email '%s': %w", data.Email, ErrEmailTaken)
	}

	hashed, err := s.verifier.Hash(data.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:              uuid.New().String(),
		DisplayName:     data.DisplayName,
		Email:           data.Email,
		Password:        hashed,
		Avatar:          avatarFor(data.DisplayName),
		Bio:             defaultBio,
		City:            data.City,
		Rating:          defaultRating,
		GeoHash:         defaultGeoHash,
		PreferredGenres: []string{},
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", fmt.Errorf("failed to register user: %w", err)
	}

	sanitized := user.Sanitized()
	if err := s.sessions.Save(&sanitized); err != nil {
		return nil, "", fmt.Errorf("failed to persist session: %w", err)
	}
	s.setCurrent(&sanitized)

	token, err := s.issueToken(&sanitized)
	if err != nil {
		return nil, "", err
	}
	return &sanitized, token, nil
}

// Logout clears the current user and removes the persisted record.
func (s *AuthService) Logout() error {
	s.setCurrent(nil)
	if err := s.sessions.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Restore loads a previously persisted session record at startup. No record
// means unauthenticated, not an error. A record that fails to decode or is
// missing its identity fields is discarded rather than trusted.
func (s *AuthService) Restore() (*models.User, error) {
	user, err := s.sessions.Load()
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		log.Printf("Discarding unreadable session record: %v", err)
		if clearErr := s.sessions.Clear(); clearErr != nil {
			return nil, fmt.Errorf("failed to discard session record: %w", clearErr)
		}
		return nil, nil
	}
	if user.ID == "" || user.Email == "" {
		log.Printf("Discarding malformed session record (missing identity fields)")
		if clearErr := s.sessions.Clear(); clearErr != nil {
			return nil, fmt.Errorf("failed to discard session record: %w", clearErr)
		}
		return nil, nil
	}

	s.setCurrent(user)
	return user, nil
}

// CurrentUser returns the currently authenticated user, or nil.
func (s *AuthService) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// ValidateToken parses and validates a JWT token, returning the claims if
// valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

func (s *AuthService) setCurrent(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = user
}

func validateRegisterInput(data RegisterInput) error {
	if strings.TrimSpace(data.DisplayName) == "" {
		return fmt.Errorf("display name is required: %w", ErrValidation)
	}
	if !strings.Contains(data.Email, "@") {
		return fmt.Errorf("email address is malformed: %w", ErrValidation)
	}
	if len(data.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters: %w", ErrValidation)
	}
	if strings.TrimSpace(data.City) == "" {
		return fmt.Errorf("city is required: %w", ErrValidation)
	}
	return nil
}

func avatarFor(displayName string) string {
	for _, r := range displayName {
		return string(unicode.ToUpper(r))
	}
	return ""
}
