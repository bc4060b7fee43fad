package repo

import (
	"errors"

	"gallery-app/internal/domain/gallery"

	"gorm.io/gorm"
)

type Comments struct {
	db *gorm.DB
}

func NewComments(db *gorm.DB) Comments {
	return Comments{db: db}
}

func (r Comments) Create(c *gallery.Comment) error {
	return r.db.Create(c).Error
}

func (r Comments) FindByID(id uint) (*gallery.Comment, error) {
	var c gallery.Comment
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r Comments) ListForArtwork(artworkID uint) ([]gallery.Comment, error) {
	var list []gallery.Comment
	err := r.db.Where("artwork_id = ?", artworkID).Order("created_at DESC").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r Comments) Delete(c *gallery.Comment) error {
	return r.db.Delete(c).Error
}
