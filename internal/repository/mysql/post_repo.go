package mysql

import (
	"context"
	"errors"

	"Ming_Social/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	return r.DB.WithContext(ctx).Create(post).Error
}

func (r *PostRepository) FindByID(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.WithContext(ctx).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrPostNotFound
	}
	return &post, err
}

// List authorID=0 返回全部，按 id 升序保证稳定顺序
func (r *PostRepository) List(ctx context.Context, authorID uint64) ([]model.Post, error) {
	var list []model.Post
	q := r.DB.WithContext(ctx).Model(&model.Post{})
	if authorID > 0 {
		q = q.Where("author_id = ?", authorID)
	}
	err := q.Order("id ASC").Find(&list).Error
	return list, err
}
