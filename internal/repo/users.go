package repo

import (
	"errors"

	"gallery-app/internal/domain/users"

	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) Users {
	return Users{db: db}
}

// Create inserts a new user, failing with ErrConflict when the email is
// already registered.
func (r Users) Create(u *users.User) error {
	var count int64
	if err := r.db.Model(&users.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}
	return r.db.Create(u).Error
}

func (r Users) FindByID(id uint) (*users.User, error) {
	var u users.User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r Users) FindByEmail(email string) (*users.User, error) {
	var u users.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r Users) ListArtists() ([]users.User, error) {
	var list []users.User
	if err := r.db.Where("role = ?", users.RoleArtist).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r Users) FindArtistByID(id uint) (*users.User, error) {
	var u users.User
	err := r.db.Where("id = ? AND role = ?", id, users.RoleArtist).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update applies a column patch to the user's own row and returns the fresh
// state.
func (r Users) Update(id uint, patch map[string]interface{}) (*users.User, error) {
	if len(patch) == 0 {
		return r.FindByID(id)
	}
	res := r.db.Model(&users.User{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(id)
}
