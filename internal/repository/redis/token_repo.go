package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrExtendFailed     = errors.New("token extend failed")
	ErrTokenDeleted     = errors.New("token delete failed")
)

const (
	sessionTokenPrefix = "login:user:token"
	sessionTokenExpire = 60 * 30
)

// TokenRepository 单会话 token 存储：登录写入、登出删除，
// 中间件逐请求比对，实现服务端作废（原系统的 refresh 黑名单等价物）
type TokenRepository struct{}

func (r *TokenRepository) Add(userID uint64, token string) error {
	key := fmt.Sprintf("%s:%d", sessionTokenPrefix, userID)
	if err := Client.Set(context.Background(), key, token, time.Second*sessionTokenExpire).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *TokenRepository) Get(userID uint64) (string, error) {
	key := fmt.Sprintf("%s:%d", sessionTokenPrefix, userID)
	token, err := Client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

// Extend 校验通过后滑动续期
func (r *TokenRepository) Extend(userID uint64) error {
	key := fmt.Sprintf("%s:%d", sessionTokenPrefix, userID)
	if _, err := Client.Expire(context.Background(), key, time.Second*sessionTokenExpire).Result(); err != nil {
		return ErrExtendFailed
	}
	return nil
}

func (r *TokenRepository) Delete(userID uint64) error {
	key := fmt.Sprintf("%s:%d", sessionTokenPrefix, userID)
	if err := Client.Del(context.Background(), key).Err(); err != nil {
		return ErrTokenDeleted
	}
	return nil
}
