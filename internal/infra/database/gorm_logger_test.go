package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func observedGormLogger(level gormlogger.LogLevel) (gormlogger.Interface, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return newGormLogger(zap.New(core), level), logs
}

func query() (string, int64) { return "SELECT 1", 1 }

func TestGormLoggerTrace(t *testing.T) {
	l, logs := observedGormLogger(gormlogger.Warn)
	ctx := context.Background()

	l.Trace(ctx, time.Now(), query, errors.New("connection reset"))
	l.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)
	l.Trace(ctx, time.Now().Add(-time.Second), query, nil)
	l.Trace(ctx, time.Now(), query, nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "SQL failed", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "SELECT 1", entries[0].ContextMap()["sql"])
	assert.Equal(t, "Slow SQL", entries[1].Message)
	assert.Equal(t, "gorm", entries[1].LoggerName)
}

func TestGormLoggerLogMode(t *testing.T) {
	l, logs := observedGormLogger(gormlogger.Warn)
	ctx := context.Background()

	l.Info(ctx, "migrating %s", "users")
	assert.Zero(t, logs.Len())

	l.LogMode(gormlogger.Info).Info(ctx, "migrating %s", "users")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "migrating users", logs.All()[0].Message)

	l.LogMode(gormlogger.Silent).Trace(ctx, time.Now(), query, errors.New("boom"))
	assert.Equal(t, 1, logs.Len())
}
