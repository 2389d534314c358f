package service

import (
	"context"

	"Ming_Social/internal/model"
	"Ming_Social/internal/repository"
)

type PostService struct {
	repo repository.PostRepository
}

func NewPostService(repo repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// Create 作者只取认证身份，请求体里带的作者一律无视
func (s *PostService) Create(ctx context.Context, authorID uint64, content string) (*model.Post, error) {
	if content == "" {
		return nil, model.ErrContentRequired
	}

	post := &model.Post{
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// List authorID=0 返回全部
func (s *PostService) List(ctx context.Context, authorID uint64) ([]model.Post, error) {
	return s.repo.List(ctx, authorID)
}
