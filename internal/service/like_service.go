package service

import (
	"context"

	"Ming_Social/internal/model"
	"Ming_Social/internal/repository"
)

type LikeService struct {
	repo  repository.LikeRepository
	posts repository.PostRepository
}

func NewLikeService(repo repository.LikeRepository, posts repository.PostRepository) *LikeService {
	return &LikeService{repo: repo, posts: posts}
}

// Create 点赞人取认证身份；同一用户重复点赞不拦（产品既有行为）
func (s *LikeService) Create(ctx context.Context, userID, postID uint64) (*model.Like, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	like := &model.Like{
		UserID: userID,
		PostID: postID,
	}
	if err := s.repo.Create(ctx, like); err != nil {
		return nil, err
	}
	return like, nil
}

func (s *LikeService) List(ctx context.Context, userID uint64) ([]model.Like, error) {
	return s.repo.List(ctx, userID)
}
