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
	AdminTokenPrefix = "admin:session:token"
	AdminTokenExpire = 60 * 30
)

// SessionRepository 管理员会话，redis 里一人一键，实现单点登录和强制下线
type SessionRepository struct{}

func (r *SessionRepository) AddToken(adminID, token string) error {
	key := fmt.Sprintf("%s:%s", AdminTokenPrefix, adminID)
	if err := Client.Set(context.Background(), key, token, time.Second*AdminTokenExpire).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) GetToken(adminID string) (string, error) {
	key := fmt.Sprintf("%s:%s", AdminTokenPrefix, adminID)
	token, err := Client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

func (r *SessionRepository) ExtendToken(adminID string) error {
	key := fmt.Sprintf("%s:%s", AdminTokenPrefix, adminID)
	_, err := Client.Expire(context.Background(), key, time.Second*AdminTokenExpire).Result()
	if err != nil {
		return ErrExtendFailed
	}
	return nil
}

// DeleteToken 注销或强制下线都走这里
func (r *SessionRepository) DeleteToken(adminID string) error {
	key := fmt.Sprintf("%s:%s", AdminTokenPrefix, adminID)
	err := Client.Del(context.Background(), key).Err()
	if err != nil {
		return ErrTokenDeleted
	}
	return nil
}
