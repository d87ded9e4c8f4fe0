package service

import (
	"context"

	"reel-go/internal/api/dto"
	"reel-go/internal/infra/kafka"
	"reel-go/internal/repository"

	"github.com/google/uuid"
)

// EngagementService 点赞、收藏、关注的翻转操作
type EngagementService struct {
	users     UserStore
	videos    VideoStore
	likes     RelationStore
	bookmarks RelationStore
	follows   FollowStore
	events    EventPublisher
}

func NewEngagementService(users UserStore, videos VideoStore, likes, bookmarks RelationStore, follows FollowStore, events EventPublisher) *EngagementService {
	return &EngagementService{
		users:     users,
		videos:    videos,
		likes:     likes,
		bookmarks: bookmarks,
		follows:   follows,
		events:    events,
	}
}

// ToggleLike 翻转点赞状态
func (s *EngagementService) ToggleLike(ctx context.Context, userID, videoID uuid.UUID) (*dto.LikeResult, error) {
	active, err := s.toggleVideoRelation(ctx, s.likes, userID, videoID)
	if err != nil {
		return nil, err
	}
	publishEvent(ctx, s.events, kafka.EventLikeToggled, userID, videoID, active)
	return &dto.LikeResult{IsLiked: active}, nil
}

// ToggleBookmark 翻转收藏状态
func (s *EngagementService) ToggleBookmark(ctx context.Context, userID, videoID uuid.UUID) (*dto.BookmarkResult, error) {
	active, err := s.toggleVideoRelation(ctx, s.bookmarks, userID, videoID)
	if err != nil {
		return nil, err
	}
	publishEvent(ctx, s.events, kafka.EventBookmarkToggled, userID, videoID, active)
	return &dto.BookmarkResult{IsBookmarked: active}, nil
}

// ToggleFollow 翻转关注状态
func (s *EngagementService) ToggleFollow(ctx context.Context, followerID, followeeID uuid.UUID) (*dto.FollowResult, error) {
	if followerID == followeeID {
		return nil, ErrCannotFollowSelf
	}

	exists, err := s.users.Exists(ctx, followeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	active, err := s.follows.Toggle(ctx, followerID, followeeID)
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	publishEvent(ctx, s.events, kafka.EventFollowToggled, followerID, followeeID, active)
	return &dto.FollowResult{IsFollowing: active}, nil
}

func (s *EngagementService) toggleVideoRelation(ctx context.Context, store RelationStore, userID, videoID uuid.UUID) (bool, error) {
	exists, err := s.videos.Exists(ctx, videoID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, ErrVideoNotFound
	}

	active, err := store.Toggle(ctx, userID, videoID)
	if err != nil {
		// 检查之后视频被并发删除
		if repository.IsForeignKeyViolation(err) {
			return false, ErrVideoNotFound
		}
		return false, err
	}
	return active, nil
}
