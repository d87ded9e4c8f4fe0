package service

import (
	"context"
	"strings"

	"reel-go/internal/api/dto"
	"reel-go/internal/model"
	"reel-go/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	SearchSourceElasticsearch = "elasticsearch"
	SearchSourceDatabase      = "database"
)

type SearchService struct {
	videos   VideoStore
	searcher VideoSearcher
}

// NewSearchService searcher 为 nil 时只走数据库
func NewSearchService(videos VideoStore, searcher VideoSearcher) *SearchService {
	return &SearchService{videos: videos, searcher: searcher}
}

// SearchVideos 搜索视频（ES 优先，失败则降级到 DB）
func (s *SearchService) SearchVideos(ctx context.Context, req *dto.SearchVideoRequest) (*dto.SearchVideoData, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}
	keyword := strings.TrimSpace(req.Q)
	if keyword == "" {
		return nil, NewValidationError("q", "搜索关键词不能为空")
	}

	if s.searcher != nil {
		data, err := s.searchFromES(ctx, keyword, req.Page, req.PageSize)
		if err == nil {
			return data, nil
		}
		logger.Warn("ES search failed, fallback to DB", zap.Error(err))
	}
	return s.searchFromDB(ctx, keyword, req.Page, req.PageSize)
}

func (s *SearchService) searchFromES(ctx context.Context, keyword string, page, pageSize int) (*dto.SearchVideoData, error) {
	hits, err := s.searcher.SearchVideoIDs(ctx, keyword, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	if len(hits.IDs) == 0 {
		return buildSearchData(nil, nil, hits.Total, page, pageSize, SearchSourceElasticsearch), nil
	}

	videos, err := s.videos.GetByIDsWithOwner(ctx, hits.IDs)
	if err != nil {
		return nil, err
	}

	videoMap := make(map[uuid.UUID]*model.Video, len(videos))
	for i := range videos {
		videoMap[videos[i].ID] = &videos[i]
	}

	// 保持 ES 的相关度顺序，索引滞后导致的已删除视频跳过
	ordered := make([]model.Video, 0, len(hits.IDs))
	for _, id := range hits.IDs {
		if v, ok := videoMap[id]; ok {
			ordered = append(ordered, *v)
		}
	}

	return buildSearchData(ordered, hits.Highlights, hits.Total, page, pageSize, SearchSourceElasticsearch), nil
}

func (s *SearchService) searchFromDB(ctx context.Context, keyword string, page, pageSize int) (*dto.SearchVideoData, error) {
	videos, total, err := s.videos.Search(ctx, keyword, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return buildSearchData(videos, nil, total, page, pageSize, SearchSourceDatabase), nil
}

func buildSearchData(videos []model.Video, highlights map[uuid.UUID]map[string][]string, total int64, page, pageSize int, source string) *dto.SearchVideoData {
	items := make([]dto.SearchVideoInfo, 0, len(videos))
	for i := range videos {
		v := &videos[i]
		desc := ""
		if v.Description != nil {
			desc = *v.Description
		}
		items = append(items, dto.SearchVideoInfo{
			ID:          v.ID,
			Title:       v.Title,
			Description: desc,
			VideoURL:    v.VideoURL,
			User: dto.FeedUser{
				ID:          v.User.ID,
				Name:        v.User.Name,
				DisplayName: v.User.DisplayName,
			},
			CreatedAt: v.CreatedAt.UTC(),
			Highlight: highlights[v.ID],
		})
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	return &dto.SearchVideoData{
		Videos:     items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Source:     source,
	}
}
