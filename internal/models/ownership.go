package models

// Condition tiers for an owned copy.
const (
	ConditionNew       = "new"
	ConditionLikeNew   = "like_new"
	ConditionSleeved   = "sleeved"
	ConditionWellLoved = "well_loved"
)

// Ownership records that a user possesses a copy of a game and may offer to
// lend it. One record per (user, game) pair is expected but not enforced.
type Ownership struct {
	ID                string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID            string   `json:"userId" gorm:"index;type:varchar(36)" validate:"required"`
	GameID            string   `json:"gameId" gorm:"index;type:varchar(36)" validate:"required"`
	Condition         string   `json:"condition" validate:"oneof=new like_new sleeved well_loved"`
	IsLendable        bool     `json:"isLendable"`
	Notes             string   `json:"notes"`
	AvailabilitySlots []string `json:"availabilitySlots" gorm:"serializer:json"`
}

// OwnershipWithOwner is an Ownership joined with its owning User, as returned
// by the game-detail lookup.
type OwnershipWithOwner struct {
	Ownership
	User User `json:"user" gorm:"-"`
}

// OwnershipWithGame is an Ownership joined with its Game, as returned by the
// profile lookup.
type OwnershipWithGame struct {
	Ownership
	Game Game `json:"game" gorm:"-"`
}
