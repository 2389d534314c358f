package mysql

import (
	"context"
	"errors"

	"Ming_Social/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

// FindOrCreateByUserID 首次访问时创建空档案
func (r *ProfileRepository) FindOrCreateByUserID(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = model.UserProfile{UserID: userID}
		err = r.DB.WithContext(ctx).Create(&profile).Error
	}
	return &profile, err
}

func (r *ProfileRepository) Update(ctx context.Context, profile *model.UserProfile) error {
	return r.DB.WithContext(ctx).Save(profile).Error
}
