package gallery

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ExhibitionUpcoming = "upcoming"
	ExhibitionPast     = "past"
)

type Exhibition struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Location string `gorm:"not null" json:"location"`

	// Opaque date strings; start/end ordering is not validated.
	Date    string `gorm:"not null" json:"date"`
	EndDate string `gorm:"not null" json:"endDate"`

	Description string `json:"description,omitempty"`
	Type        string `gorm:"type:varchar(20);not null;default:'upcoming'" json:"type"`
	Image       string `gorm:"not null" json:"image"`

	RegistrationOpen bool `gorm:"not null;default:true" json:"registrationOpen"`
	Featured         bool `gorm:"not null;default:false" json:"featured"`

	// Ordered artwork id references, stored as a JSON array.
	Artworks datatypes.JSONSlice[string] `json:"artworks"`

	ArtistID uint `gorm:"not null;index" json:"artistId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
