package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"reel-go/internal/config"
	"reel-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("kafka brokers is empty")
	}

	producer = &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           2 * time.Second,
		MaxAttempts:            3,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// EventPublisher 把领域事件写到固定 topic，按 TargetID 分区保证同一视频的事件有序
type EventPublisher struct {
	topic string
}

// NewEventPublisher 创建事件发布器
func NewEventPublisher(topic string) *EventPublisher {
	return &EventPublisher{topic: topic}
}

// Publish 发送事件
func (p *EventPublisher) Publish(ctx context.Context, event *Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := SendRaw(ctx, p.topic, event.TargetID.String(), payload); err != nil {
		return err
	}

	logger.Debug("Event published",
		zap.String("type", event.Type),
		zap.String("target_id", event.TargetID.String()),
		zap.String("topic", p.topic),
	)
	return nil
}

// SendRaw 发送原始消息到指定 topic
func SendRaw(ctx context.Context, topic, key string, value []byte) error {
	if producer == nil {
		return fmt.Errorf("kafka producer not initialized")
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send kafka message: %w", err)
	}
	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
