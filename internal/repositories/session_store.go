package repositories

import "meeples/internal/models"

// SessionKey is the fixed key the persisted session record lives under.
const SessionKey = "meeples_session_user"

// SessionStore persists the single current-user record across restarts.
// Load returns ErrNotFound (wrapped) when no record exists; a record that
// cannot be decoded is an error distinct from absence so the caller can
// decide to discard it.
type SessionStore interface {
	Save(user *models.User) error
	Load() (*models.User, error)
	Clear() error
}
