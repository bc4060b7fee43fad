package gallery

import "time"

type Artwork struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Title    string  `gorm:"not null" json:"title"`
	Category string  `gorm:"not null" json:"category"`
	Medium   string  `json:"medium,omitempty"`
	Size     string  `json:"size,omitempty"`
	Price    float64 `gorm:"not null" json:"price"`
	Image    string  `gorm:"not null" json:"image"`
	Likes    int     `gorm:"not null;default:0" json:"likes"`

	Description string `json:"description,omitempty"`

	// Artist is the owner's display name captured at creation time. Profile
	// renames do not propagate here.
	Artist   string `gorm:"not null" json:"artist"`
	ArtistID uint   `gorm:"not null;index" json:"artistId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
