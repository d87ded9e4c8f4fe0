package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRevokedPrefix = "auth:revoked"

// TokenBlacklist 已注销 Token 的黑名单，key 随 Token 过期自动清除
type TokenBlacklist struct {
	client *redis.Client
	prefix string
}

// NewTokenBlacklist prefix 为 key 前缀（不含结尾冒号），为空时使用 auth:revoked
func NewTokenBlacklist(client *redis.Client, prefix string) *TokenBlacklist {
	prefix = strings.TrimSuffix(prefix, ":")
	if prefix == "" {
		prefix = defaultRevokedPrefix
	}
	return &TokenBlacklist{client: client, prefix: prefix}
}

func (b *TokenBlacklist) key(jti string) string {
	return b.prefix + ":" + jti
}

// Revoke 将 jti 加入黑名单，ttl 为 Token 的剩余有效期
func (b *TokenBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, b.key(jti), 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked 判断 jti 是否已注销
func (b *TokenBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	n, err := b.client.Exists(ctx, b.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("check token blacklist: %w", err)
	}
	return n > 0, nil
}
