package repository

import (
	"railcollect_backend/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) FindByUserID(userID string) (*model.Profile, error) {
	var p model.Profile
	err := r.DB.Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) FindByFriendCode(code string) (*model.Profile, error) {
	var p model.Profile
	err := r.DB.Where("friend_code = ?", code).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create surfaces gorm.ErrDuplicatedKey on a friend-code collision;
// the service retries with a fresh code.
func (r *ProfileRepository) Create(p *model.Profile) error {
	return r.DB.Create(p).Error
}
