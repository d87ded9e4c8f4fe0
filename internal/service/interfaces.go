package service

import (
	"context"
	"time"

	"reel-go/internal/infra/elasticsearch"
	"reel-go/internal/infra/kafka"
	"reel-go/internal/model"

	"github.com/google/uuid"
)

// UserStore 用户存储
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByDisplayName(ctx context.Context, displayName string) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// VideoStore 视频存储
type VideoStore interface {
	Create(ctx context.Context, video *model.Video) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ListWindow(ctx context.Context, cursor *time.Time, limit int) ([]model.VideoCursor, error)
	GetByIDsWithOwner(ctx context.Context, ids []uuid.UUID) ([]model.Video, error)
	Search(ctx context.Context, keyword string, offset, limit int) ([]model.Video, int64, error)
}

// RelationStore 用户对视频的关系（点赞、收藏）
type RelationStore interface {
	Toggle(ctx context.Context, userID, videoID uuid.UUID) (bool, error)
	ListByVideos(ctx context.Context, videoIDs []uuid.UUID) ([]model.VideoRelation, error)
	CountByVideo(ctx context.Context, videoID uuid.UUID) (int64, error)
}

// FollowStore 关注关系
type FollowStore interface {
	Toggle(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	FollowingAmong(ctx context.Context, followerID uuid.UUID, candidates []uuid.UUID) ([]uuid.UUID, error)
	ListFollowingIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error)
}

// EventPublisher 领域事件发布
type EventPublisher interface {
	Publish(ctx context.Context, event *kafka.Event) error
}

// TokenRevoker Token 黑名单
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// UploadSigner 对象存储直传签名
type UploadSigner interface {
	PresignUpload(ctx context.Context, objectName string) (string, error)
	PublicURL(objectName string) string
	Expiry() time.Duration
}

// VideoSearcher 搜索引擎查询
type VideoSearcher interface {
	SearchVideoIDs(ctx context.Context, keyword string, from, size int) (*elasticsearch.SearchHits, error)
}

// VideoIndexer 搜索引擎写入
type VideoIndexer interface {
	IndexVideo(ctx context.Context, v *model.Video, likes, bookmarks int64) error
	DeleteVideo(ctx context.Context, videoID uuid.UUID) error
	BulkIndex(ctx context.Context, docs []*elasticsearch.VideoDoc) (success, failed int, err error)
}
