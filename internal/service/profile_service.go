package service

import (
	"context"

	"Ming_Social/internal/model"
	"Ming_Social/internal/repository"
)

type ProfileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get 返回调用者自己的档案，不存在则创建
func (s *ProfileService) Get(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	return s.repo.FindOrCreateByUserID(ctx, userID)
}

func (s *ProfileService) UpdateBio(ctx context.Context, userID uint64, bio string) (*model.UserProfile, error) {
	profile, err := s.repo.FindOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.Bio = bio
	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetPicture 记录已落盘的头像路径
func (s *ProfileService) SetPicture(ctx context.Context, userID uint64, path string) (*model.UserProfile, error) {
	profile, err := s.repo.FindOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.ProfilePicture = path
	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
