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
	UserTokenPrefix = "login:user:token"
	UserTokenExpire = 30 * time.Minute
)

// UserRepository 会话镜像：access token 以用户为键落 Redis，
// 同一账号后登顶掉先登
type UserRepository struct{}

func tokenKey(userID string) string {
	return fmt.Sprintf("%s:%s", UserTokenPrefix, userID)
}

func (r *UserRepository) AddUserToken(userID, token string) error {
	if err := Client.Set(context.Background(), tokenKey(userID), token, UserTokenExpire).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *UserRepository) GetUserToken(userID string) (string, error) {
	token, err := Client.Get(context.Background(), tokenKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

// ExtendUserToken 校验通过后滑动续期
func (r *UserRepository) ExtendUserToken(userID string) error {
	if _, err := Client.Expire(context.Background(), tokenKey(userID), UserTokenExpire).Result(); err != nil {
		return ErrExtendFailed
	}
	return nil
}

func (r *UserRepository) DeleteUserToken(userID string) error {
	if err := Client.Del(context.Background(), tokenKey(userID)).Err(); err != nil {
		return ErrTokenDeleted
	}
	return nil
}
