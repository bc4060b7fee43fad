package repo

import (
	"gallery-app/internal/domain/gallery"

	"gorm.io/gorm"
)

type Exhibitions struct {
	db *gorm.DB
}

func NewExhibitions(db *gorm.DB) Exhibitions {
	return Exhibitions{db: db}
}

func (r Exhibitions) Create(e *gallery.Exhibition) error {
	return r.db.Create(e).Error
}

func (r Exhibitions) ListNewestFirst() ([]gallery.Exhibition, error) {
	var list []gallery.Exhibition
	if err := r.db.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
