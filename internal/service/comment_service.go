package service

import (
	"context"

	"Ming_Social/internal/model"
	"Ming_Social/internal/repository"
)

type CommentService struct {
	repo  repository.CommentRepository
	posts repository.PostRepository
}

func NewCommentService(repo repository.CommentRepository, posts repository.PostRepository) *CommentService {
	return &CommentService{repo: repo, posts: posts}
}

// Create 作者注入同 Post；被评论的帖子必须存在
func (s *CommentService) Create(ctx context.Context, authorID, postID uint64, content string) (*model.Comment, error) {
	if content == "" {
		return nil, model.ErrContentRequired
	}
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		AuthorID: authorID,
		PostID:   postID,
		Content:  content,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) List(ctx context.Context, authorID uint64) ([]model.Comment, error) {
	return s.repo.List(ctx, authorID)
}
