package models

// User represents a member of the lending community. Password holds the
// bcrypt hash of the credential and is never serialized; the persisted
// session record therefore carries every field except it.
type User struct {
	ID              string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	DisplayName     string   `json:"displayName" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email           string   `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password        string   `json:"-" gorm:"type:varchar(255)"`
	Avatar          string   `json:"avatar"`
	Bio             string   `json:"bio"`
	City            string   `json:"city" validate:"omitempty,max=100"`
	Rating          float64  `json:"rating" validate:"gte=0,lte=5"`
	GeoHash         string   `json:"geoHashApprox"`
	PreferredGenres []string `json:"preferredGenres" gorm:"serializer:json"`
}

// Sanitized returns a copy safe to hand to callers and to persist as the
// session record: everything but the password hash.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
