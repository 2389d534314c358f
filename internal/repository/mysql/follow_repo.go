package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"Ming_Social/internal/model"

	"gorm.io/gorm"
)

type FollowRepository struct {
	DB *gorm.DB
}

// Create 插入关注边并在同一事务写 outbox 事件。
// 唯一索引 uk_follower_followed 是并发下的最终防线，
// 冲突统一转成 model.ErrAlreadyFollowing。
func (r *FollowRepository) Create(ctx context.Context, follow *model.Follow) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(follow).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return model.ErrAlreadyFollowing
			}
			return err
		}
		return insertOutbox(tx, "follow", follow.FollowerID, follow.FollowedID)
	})
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followedID uint64) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&n).Error
	return n > 0, err
}

func (r *FollowRepository) FindByID(ctx context.Context, id uint64) (*model.Follow, error) {
	var follow model.Follow
	err := r.DB.WithContext(ctx).First(&follow, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrFollowNotFound
	}
	return &follow, err
}

// Delete 删除边并写 unfollow 事件，同一事务
func (r *FollowRepository) Delete(ctx context.Context, follow *model.Follow) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Follow{}, follow.ID)
		if res.Error != nil {
			return res.Error
		}
		// 已被并发删除，视为幂等成功，不再发事件
		if res.RowsAffected == 0 {
			return nil
		}
		return insertOutbox(tx, "unfollow", follow.FollowerID, follow.FollowedID)
	})
}

func (r *FollowRepository) List(ctx context.Context, followerID uint64) ([]model.Follow, error) {
	var list []model.Follow
	q := r.DB.WithContext(ctx).Model(&model.Follow{})
	if followerID > 0 {
		q = q.Where("follower_id = ?", followerID)
	}
	err := q.Order("id ASC").Find(&list).Error
	return list, err
}

// 插入outbox事件记录
func insertOutbox(tx *gorm.DB, event string, follower, followed uint64) error {
	payload, err := json.Marshal(map[string]any{
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"follower":   follower,
		"followed":   followed,
	})
	if err != nil {
		return err
	}
	ob := &model.SocialOutbox{
		EventType: event,
		Follower:  follower,
		Followed:  followed,
		Payload:   string(payload),
		Status:    0,
	}
	return tx.Create(ob).Error
}
