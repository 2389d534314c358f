package service

import (
	"context"
	"errors"

	"Ming_Social/internal/model"
	"Ming_Social/internal/pkg"
	"Ming_Social/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo   repository.UserRepository
	tokens repository.TokenRepository
}

func NewUserService(repo repository.UserRepository, tokens repository.TokenRepository) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

func (s *UserService) Register(ctx context.Context, username, password, email string) (*model.User, error) {
	if username == "" || email == "" {
		return nil, errors.New("username and email required")
	}
	if len(password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Password: string(hash),
		Email:    email,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (*pkg.Pair, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := pkg.GeneratePair(user.ID)
	if err != nil {
		return nil, err
	}
	// 登录态写入redis，登出即作废
	if err = s.tokens.Add(user.ID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *UserService) Logout(userID uint64) error {
	return s.tokens.Delete(userID)
}

// Refresh 换发 token 后同步更新redis里的登录态
func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	pair, err := pkg.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	claims, err := pkg.ParseAccess(pair.AccessToken)
	if err != nil {
		return nil, err
	}
	if err = s.tokens.Add(claims.UserID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}
