package gallery

import "time"

type Comment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ArtworkID uint `gorm:"not null;index" json:"artworkId"`
	UserID    uint `gorm:"not null" json:"userId"`

	// Name and avatar snapshots of the commenting user at creation time.
	UserName   string `gorm:"not null" json:"userName"`
	UserAvatar string `gorm:"not null" json:"userAvatar"`

	Text string `gorm:"not null" json:"text"`

	CreatedAt time.Time `json:"createdAt"`
}
