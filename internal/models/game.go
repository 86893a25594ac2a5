package models

// Complexity tiers for a game.
const (
	ComplexityVeryEasy = "very_easy"
	ComplexityEasy     = "easy"
	ComplexityMedium   = "medium"
	ComplexityHard     = "hard"
)

// Game represents a board game in the catalog. The catalog is seeded at
// startup and immutable afterwards; MinPlayers <= MaxPlayers is assumed for
// seeded records.
type Game struct {
	ID          string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string   `json:"title" gorm:"type:varchar(200)" validate:"required,min=1,max=200"`
	CoverURL    string   `json:"coverUrl" validate:"omitempty,max=500"`
	MinPlayers  int      `json:"minPlayers" validate:"gte=1"`
	MaxPlayers  int      `json:"maxPlayers" validate:"gtefield=MinPlayers"`
	PlaytimeMin int      `json:"playtimeMin" validate:"gte=0"`
	Complexity  string   `json:"complexity" validate:"oneof=very_easy easy medium hard"`
	Tags        []string `json:"tags" gorm:"serializer:json"`
	Description string   `json:"description" validate:"omitempty,max=1000"`
}
