package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
app:
  name: reel-test
  mode: release
  port: 9100
database:
  host: db.internal
  port: 5433
  user: reel
  password: secret
  dbname: reel_test
kafka:
  brokers: ["k1:9092", "k2:9092"]
  topics:
    engagement_events: test.events
jwt:
  secret: file-secret
  expire_hours: 2
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "reel-test", cfg.App.Name)
	assert.True(t, cfg.App.IsRelease())
	assert.Equal(t, 9100, cfg.App.Port)
	assert.Equal(t, "host=db.internal port=5433 user=reel password=secret dbname=reel_test sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "test.events", cfg.Kafka.Topic("engagement_events"))
	assert.Equal(t, "unknown_topic", cfg.Kafka.Topic("unknown_topic"))
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpireDuration())

	// defaults
	assert.Equal(t, "auth_token", cfg.JWT.CookieName)
	assert.Equal(t, 30, cfg.RateLimit.Requests)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.WindowDuration())
	assert.Equal(t, "videos", cfg.Elasticsearch.VideosIndex())
	assert.Equal(t, 15*time.Minute, cfg.MinIO.UploadExpiryDuration())
	assert.Equal(t, "reel", cfg.Redis.KeyPrefix)
	assert.Equal(t, 500*time.Millisecond, cfg.Redis.TimeoutDuration())

	assert.Same(t, cfg, Get())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("APP_PORT", "9200")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 9200, cfg.App.Port)
}

func TestLoadRequiresSecret(t *testing.T) {
	_, err := Load(writeConfig(t, "app:\n  name: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
