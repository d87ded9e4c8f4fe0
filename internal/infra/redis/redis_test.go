package redis

import (
	"testing"
	"time"

	"reel-go/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	opts := Options(&config.RedisConfig{Host: "cache", Port: 6380, DB: 2, PoolSize: 8})
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 8, opts.PoolSize)
	assert.Equal(t, 500*time.Millisecond, opts.ReadTimeout)
	assert.Equal(t, time.Second, opts.DialTimeout)

	opts = Options(&config.RedisConfig{Host: "cache", Port: 6380, Timeout: 200})
	assert.Equal(t, 200*time.Millisecond, opts.WriteTimeout)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "reel:auth:revoked", Key("reel", "auth", "revoked"))
	assert.Equal(t, "auth:revoked", Key("", "auth", "revoked"))
	assert.Equal(t, "reel:auth", Key("reel:", ":auth"))
}
