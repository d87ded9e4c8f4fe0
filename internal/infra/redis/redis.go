package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"reel-go/internal/config"
	"reel-go/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	client    *redis.Client
	keyPrefix string
)

// Options 由配置生成客户端参数；读写超时偏短，Redis 故障时认证请求尽快失败而不是排队
func Options(cfg *config.RedisConfig) *redis.Options {
	timeout := cfg.TimeoutDuration()
	return &redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  2 * timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		PoolTimeout:  2 * timeout,
	}
}

// Init 初始化Redis客户端
func Init(cfg *config.RedisConfig) error {
	c := redis.NewClient(Options(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	client = c
	keyPrefix = cfg.KeyPrefix
	logger.Info("Redis connected",
		zap.String("addr", cfg.Addr()),
		zap.Int("db", cfg.DB),
		zap.String("key_prefix", cfg.KeyPrefix),
	)
	return nil
}

// Key 拼接带命名空间的 key，如 Key("reel", "auth", "revoked") => "reel:auth:revoked"
func Key(namespace string, parts ...string) string {
	segs := make([]string, 0, len(parts)+1)
	if ns := strings.Trim(namespace, ":"); ns != "" {
		segs = append(segs, ns)
	}
	for _, p := range parts {
		if p = strings.Trim(p, ":"); p != "" {
			segs = append(segs, p)
		}
	}
	return strings.Join(segs, ":")
}

// RevokedTokenPrefix Token 黑名单使用的 key 前缀
func RevokedTokenPrefix() string {
	return Key(keyPrefix, "auth", "revoked")
}

// Close 关闭Redis连接
func Close() error {
	if client == nil {
		return nil
	}
	logger.Info("Redis connection closed")
	return client.Close()
}

// Get 获取Redis客户端实例
func Get() *redis.Client {
	return client
}
