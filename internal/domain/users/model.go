package users

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoleArtist  = "artist"
	RoleVisitor = "visitor"
)

// Social handles are embedded on the user row rather than joined.
type Social struct {
	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Password string `gorm:"not null" json:"-"`
	// Role is fixed at registration; nothing in the API mutates it.
	Role   string `gorm:"type:varchar(20);not null" json:"role"`
	Avatar string `gorm:"not null" json:"avatar"`

	Banner    string `json:"banner,omitempty"`
	Specialty string `json:"specialty,omitempty"`
	Location  string `json:"location,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Joined    string `json:"joined,omitempty"`

	Skills datatypes.JSONSlice[string] `json:"skills"`

	// Denormalized counters, maintained externally. Never derived from the
	// artwork or comment tables.
	Followers     int `gorm:"not null;default:0" json:"followers"`
	ArtworksCount int `gorm:"not null;default:0" json:"artworksCount"`
	TotalLikes    int `gorm:"not null;default:0" json:"totalLikes"`

	Social Social `gorm:"embedded;embeddedPrefix:social_" json:"social"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
