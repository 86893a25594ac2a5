package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"meeples/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRecord is the single-row table backing the durable session store.
// Value is the serialized user object (without the password hash).
type sessionRecord struct {
	Key   string `gorm:"primaryKey;type:varchar(64)"`
	Value string
}

func (sessionRecord) TableName() string { return "session_records" }

// GORMSessionStore is a GORM implementation of SessionStore. With the sqlite
// driver and a file DSN it survives process restarts, which is what the
// session contract requires.
type GORMSessionStore struct {
	db *gorm.DB
}

// NewGORMSessionStore creates a new GORMSessionStore and migrates its table.
func NewGORMSessionStore(db *gorm.DB) (*GORMSessionStore, error) {
	if err := db.AutoMigrate(&sessionRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate session store: %w", err)
	}
	return &GORMSessionStore{db: db}, nil
}

// Save serializes the user and upserts it under the fixed session key.
func (s *GORMSessionStore) Save(user *models.User) error {
	value, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize session user: %w", err)
	}
	record := sessionRecord{Key: SessionKey, Value: string(value)}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to save session record: %w", err)
	}
	return nil
}

// Load reads and deserializes the persisted user record.
func (s *GORMSessionStore) Load() (*models.User, error) {
	var record sessionRecord
	if err := s.db.First(&record, "key = ?", SessionKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session record under %s: %w", SessionKey, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load session record: %w", err)
	}
	var user models.User
	if err := json.Unmarshal([]byte(record.Value), &user); err != nil {
		return nil, fmt.Errorf("failed to decode session record: %w", err)
	}
	return &user, nil
}

// Clear deletes the persisted record. Deleting an absent record is not an
// error.
func (s *GORMSessionStore) Clear() error {
	if err := s.db.Delete(&sessionRecord{}, "key = ?", SessionKey).Error; err != nil {
		return fmt.Errorf("failed to clear session record: %w", err)
	}
	return nil
}
