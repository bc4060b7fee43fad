package repo

import (
	"errors"

	"gallery-app/internal/domain/gallery"

	"gorm.io/gorm"
)

type Artworks struct {
	db *gorm.DB
}

func NewArtworks(db *gorm.DB) Artworks {
	return Artworks{db: db}
}

func (r Artworks) Create(a *gallery.Artwork) error {
	return r.db.Create(a).Error
}

func (r Artworks) FindByID(id uint) (*gallery.Artwork, error) {
	var a gallery.Artwork
	if err := r.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r Artworks) ListNewestFirst() ([]gallery.Artwork, error) {
	var list []gallery.Artwork
	if err := r.db.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateOwned patches an artwork only when it belongs to ownerID. A missing
// row and an ownership mismatch both come back as ErrNotFound.
func (r Artworks) UpdateOwned(id, ownerID uint, patch map[string]interface{}) (*gallery.Artwork, error) {
	a, err := r.loadOwned(id, ownerID)
	if err != nil {
		return nil, err
	}
	if len(patch) == 0 {
		return a, nil
	}
	if err := r.db.Model(a).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// DeleteOwned removes an owned artwork and returns the deleted document.
func (r Artworks) DeleteOwned(id, ownerID uint) (*gallery.Artwork, error) {
	a, err := r.loadOwned(id, ownerID)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r Artworks) loadOwned(id, ownerID uint) (*gallery.Artwork, error) {
	a, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if a.ArtistID != ownerID {
		return nil, ErrNotFound
	}
	return a, nil
}
