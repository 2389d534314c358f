// Package repository 定义持久化接口，mysql/redis 子包提供实现
package repository

import (
	"context"

	"Ming_Social/internal/model"
)

type UserRepository interface {
	// Create 用户名或邮箱冲突时返回 model.ErrUserExists
	Create(ctx context.Context, user *model.User) error
	// FindByID 未找到时返回 model.ErrUserNotFound
	FindByID(ctx context.Context, id uint64) (*model.User, error)
	// FindByUsername 用户名或邮箱匹配，未找到时返回 model.ErrUserNotFound
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type ProfileRepository interface {
	FindOrCreateByUserID(ctx context.Context, userID uint64) (*model.UserProfile, error)
	Update(ctx context.Context, profile *model.UserProfile) error
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	// FindByID 未找到时返回 model.ErrPostNotFound
	FindByID(ctx context.Context, id uint64) (*model.Post, error)
	// List authorID=0 表示不过滤，按 id 升序
	List(ctx context.Context, authorID uint64) ([]model.Post, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	List(ctx context.Context, authorID uint64) ([]model.Comment, error)
}

type LikeRepository interface {
	Create(ctx context.Context, like *model.Like) error
	List(ctx context.Context, userID uint64) ([]model.Like, error)
}

type FollowRepository interface {
	// Create 与 outbox 写入同一事务；唯一索引冲突返回 model.ErrAlreadyFollowing
	Create(ctx context.Context, follow *model.Follow) error
	Exists(ctx context.Context, followerID, followedID uint64) (bool, error)
	// FindByID 未找到时返回 model.ErrFollowNotFound
	FindByID(ctx context.Context, id uint64) (*model.Follow, error)
	// Delete 删除边并写 unfollow 事件，同一事务
	Delete(ctx context.Context, follow *model.Follow) error
	// List followerID=0 表示不过滤，按 id 升序
	List(ctx context.Context, followerID uint64) ([]model.Follow, error)
}

type OutboxRepository interface {
	ListPending(ctx context.Context, batchSize int) ([]model.SocialOutbox, error)
	MarkSent(ctx context.Context, id uint64) error
	MarkFailed(ctx context.Context, id uint64) error
}

// TokenRepository 登录态 token 存储，登出即作废
type TokenRepository interface {
	Add(userID uint64, token string) error
	Get(userID uint64) (string, error)
	Extend(userID uint64) error
	Delete(userID uint64) error
}
