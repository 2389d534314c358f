package service

import (
	"context"

	"Ming_Social/internal/model"
	"Ming_Social/internal/repository"
)

type FollowService struct {
	repo  repository.FollowRepository
	users repository.UserRepository
}

func NewFollowService(repo repository.FollowRepository, users repository.UserRepository) *FollowService {
	return &FollowService{repo: repo, users: users}
}

// Follow 关注：follower 永远是调用者。
// 这里的 Exists 只是快路径，并发下靠数据库唯一索引兜底，
// 冲突在仓储层同样转成 ErrAlreadyFollowing。
func (s *FollowService) Follow(ctx context.Context, followerID, followedID uint64) (*model.Follow, error) {
	if followerID == followedID {
		return nil, model.ErrSelfFollow
	}

	exists, err := s.repo.Exists(ctx, followerID, followedID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrAlreadyFollowing
	}

	if _, err := s.users.FindByID(ctx, followedID); err != nil {
		return nil, err
	}

	follow := &model.Follow{
		FollowerID: followerID,
		FollowedID: followedID,
	}
	if err := s.repo.Create(ctx, follow); err != nil {
		return nil, err
	}
	return follow, nil
}

// Unfollow 只有边的 follower 本人可以删
func (s *FollowService) Unfollow(ctx context.Context, callerID, followID uint64) error {
	follow, err := s.repo.FindByID(ctx, followID)
	if err != nil {
		return err
	}
	if follow.FollowerID != callerID {
		return model.ErrNoPermission
	}
	return s.repo.Delete(ctx, follow)
}

func (s *FollowService) List(ctx context.Context, followerID uint64) ([]model.Follow, error) {
	return s.repo.List(ctx, followerID)
}
