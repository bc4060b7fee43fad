package artworks

import (
	"time"

	"gallery-app/internal/domain/gallery"
)

type CreateArtworkRequest struct {
	Title       string  `json:"title" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Medium      string  `json:"medium"`
	Size        string  `json:"size"`
	Price       float64 `json:"price" binding:"min=0"`
	Image       string  `json:"image" binding:"required"`
	Description string  `json:"description"`
}

// UpdateArtworkRequest is a partial patch; absent fields are left untouched.
type UpdateArtworkRequest struct {
	Title       *string  `json:"title"`
	Category    *string  `json:"category"`
	Medium      *string  `json:"medium"`
	Size        *string  `json:"size"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
	Likes       *int     `json:"likes"`
}

func (r UpdateArtworkRequest) patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.Title != nil {
		patch["title"] = *r.Title
	}
	if r.Category != nil {
		patch["category"] = *r.Category
	}
	if r.Medium != nil {
		patch["medium"] = *r.Medium
	}
	if r.Size != nil {
		patch["size"] = *r.Size
	}
	if r.Price != nil {
		patch["price"] = *r.Price
	}
	if r.Image != nil {
		patch["image"] = *r.Image
	}
	if r.Description != nil {
		patch["description"] = *r.Description
	}
	if r.Likes != nil {
		patch["likes"] = *r.Likes
	}
	return patch
}

// CommentDTO is the wire shape for comments: snapshots plus the creation
// date truncated to a calendar day.
type CommentDTO struct {
	ID     uint   `json:"id"`
	User   string `json:"user"`
	Avatar string `json:"avatar"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

func toCommentDTO(c gallery.Comment) CommentDTO {
	return CommentDTO{
		ID:     c.ID,
		User:   c.UserName,
		Avatar: c.UserAvatar,
		Text:   c.Text,
		Date:   c.CreatedAt.Format(time.DateOnly),
	}
}

type ArtworkDetail struct {
	gallery.Artwork
	Comments []CommentDTO `json:"comments"`
}
