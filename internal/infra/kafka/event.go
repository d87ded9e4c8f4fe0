package kafka

import (
	"time"

	"github.com/google/uuid"
)

// 事件类型
const (
	EventVideoCreated    = "video.created"
	EventVideoDeleted    = "video.deleted"
	EventLikeToggled     = "like.toggled"
	EventBookmarkToggled = "bookmark.toggled"
	EventFollowToggled   = "follow.toggled"
)

// Event 写操作成功后发布的领域事件
// TargetID 对视频类事件为视频ID，对关注事件为被关注用户ID
type Event struct {
	Type       string    `json:"type"`
	ActorID    uuid.UUID `json:"actor_id"`
	TargetID   uuid.UUID `json:"target_id"`
	Active     bool      `json:"active"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent 创建事件，时间取当前 UTC
func NewEvent(eventType string, actorID, targetID uuid.UUID, active bool) *Event {
	return &Event{
		Type:       eventType,
		ActorID:    actorID,
		TargetID:   targetID,
		Active:     active,
		OccurredAt: time.Now().UTC(),
	}
}

// AffectsVideo 事件是否会改变视频的索引文档
func (e *Event) AffectsVideo() bool {
	switch e.Type {
	case EventVideoCreated, EventVideoDeleted, EventLikeToggled, EventBookmarkToggled:
		return true
	}
	return false
}
