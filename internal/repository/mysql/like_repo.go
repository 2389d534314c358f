package mysql

import (
	"context"

	"Ming_Social/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	DB *gorm.DB
}

func (r *LikeRepository) Create(ctx context.Context, like *model.Like) error {
	return r.DB.WithContext(ctx).Create(like).Error
}

func (r *LikeRepository) List(ctx context.Context, userID uint64) ([]model.Like, error) {
	var list []model.Like
	q := r.DB.WithContext(ctx).Model(&model.Like{})
	if userID > 0 {
		q = q.Where("user_id = ?", userID)
	}
	err := q.Order("id ASC").Find(&list).Error
	return list, err
}
