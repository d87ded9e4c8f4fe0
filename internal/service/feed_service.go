package service

import (
	"context"
	"strconv"
	"strings"

	"reel-go/internal/api/dto"
	"reel-go/internal/model"
	"reel-go/pkg/pagination"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultFeedLimit = 10
	MaxFeedLimit     = 100
)

type FeedService struct {
	videos    VideoStore
	likes     RelationStore
	bookmarks RelationStore
	follows   FollowStore
}

func NewFeedService(videos VideoStore, likes, bookmarks RelationStore, follows FollowStore) *FeedService {
	return &FeedService{
		videos:    videos,
		likes:     likes,
		bookmarks: bookmarks,
		follows:   follows,
	}
}

// ParseFeedLimit 解析每页条数，缺省为 10，必须是 1-100 的整数
func ParseFeedLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultFeedLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > MaxFeedLimit {
		return 0, NewValidationError("limit", "limit 必须是 1-100 之间的整数")
	}
	return limit, nil
}

// GetFeed 按发布时间倒序返回一页视频流，附带互动计数和当前用户的互动状态
func (s *FeedService) GetFeed(ctx context.Context, requesterID uuid.UUID, q *dto.FeedQuery) (*dto.FeedData, error) {
	limit, err := ParseFeedLimit(q.Limit)
	if err != nil {
		return nil, err
	}
	cursor := pagination.ParseCursor(q.Cursor)

	// 多取一行判断是否还有下一页
	window, err := s.videos.ListWindow(ctx, cursor, limit+1)
	if err != nil {
		return nil, err
	}
	window, hasMore := pagination.Trim(window, limit)

	data := &dto.FeedData{
		Feeds:      []dto.FeedItem{},
		Pagination: dto.FeedPagination{HasMore: hasMore},
	}
	if len(window) == 0 {
		data.Pagination.HasMore = false
		return data, nil
	}

	h, err := s.hydrate(ctx, requesterID, window)
	if err != nil {
		return nil, err
	}
	data.Feeds = assembleFeed(requesterID, window, h)

	if hasMore {
		// 以最后一条返回的条目为游标；整页都被删除时退回窗口末行
		last := window[len(window)-1].CreatedAt
		if n := len(data.Feeds); n > 0 {
			last = data.Feeds[n-1].CreatedAt
		}
		next := pagination.EncodeCursor(last)
		data.Pagination.NextCursor = &next
	}
	return data, nil
}

// feedHydration 窗口内视频的详情与互动行
type feedHydration struct {
	videos    []model.Video
	likes     []model.VideoRelation
	bookmarks []model.VideoRelation
	following []uuid.UUID
}

func (s *FeedService) hydrate(ctx context.Context, requesterID uuid.UUID, window []model.VideoCursor) (*feedHydration, error) {
	ids := make([]uuid.UUID, 0, len(window))
	for _, w := range window {
		ids = append(ids, w.ID)
	}

	var h feedHydration
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		videos, err := s.videos.GetByIDsWithOwner(gctx, ids)
		if err != nil {
			return err
		}
		h.videos = videos

		owners := make([]uuid.UUID, 0, len(videos))
		for i := range videos {
			if videos[i].UserID != requesterID {
				owners = append(owners, videos[i].UserID)
			}
		}
		following, err := s.follows.FollowingAmong(gctx, requesterID, owners)
		if err != nil {
			return err
		}
		h.following = following
		return nil
	})
	g.Go(func() error {
		likes, err := s.likes.ListByVideos(gctx, ids)
		h.likes = likes
		return err
	})
	g.Go(func() error {
		bookmarks, err := s.bookmarks.ListByVideos(gctx, ids)
		h.bookmarks = bookmarks
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &h, nil
}
