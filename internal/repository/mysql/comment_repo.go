package mysql

import (
	"context"

	"Ming_Social/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.DB.WithContext(ctx).Create(comment).Error
}

func (r *CommentRepository) List(ctx context.Context, authorID uint64) ([]model.Comment, error) {
	var list []model.Comment
	q := r.DB.WithContext(ctx).Model(&model.Comment{})
	if authorID > 0 {
		q = q.Where("author_id = ?", authorID)
	}
	err := q.Order("id ASC").Find(&list).Error
	return list, err
}
