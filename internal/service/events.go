package service

import (
	"context"
	"time"

	"reel-go/internal/infra/kafka"
	"reel-go/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// publishTimeout 单次事件发布的上限，broker 不可用时请求最多被拖慢这么久
var publishTimeout = 2 * time.Second

// publishEvent 尽力发布事件，失败只记录日志，不影响请求结果
func publishEvent(ctx context.Context, p EventPublisher, eventType string, actorID, targetID uuid.UUID, active bool) {
	if p == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.Publish(ctx, kafka.NewEvent(eventType, actorID, targetID, active)); err != nil {
		logger.Warn("Failed to publish event",
			zap.String("type", eventType),
			zap.String("target_id", targetID.String()),
			zap.Error(err),
		)
	}
}
