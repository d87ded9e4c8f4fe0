package service

import (
	"context"
	"fmt"

	"reel-go/internal/infra/elasticsearch"
	"reel-go/internal/infra/kafka"
	"reel-go/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IndexService 消费领域事件，维护搜索索引中的视频文档
type IndexService struct {
	videos    VideoStore
	likes     RelationStore
	bookmarks RelationStore
	indexer   VideoIndexer
}

func NewIndexService(videos VideoStore, likes, bookmarks RelationStore, indexer VideoIndexer) *IndexService {
	return &IndexService{
		videos:    videos,
		likes:     likes,
		bookmarks: bookmarks,
		indexer:   indexer,
	}
}

// HandleEvent 根据事件刷新或删除视频文档，关注事件不影响索引
func (s *IndexService) HandleEvent(ctx context.Context, event *kafka.Event) error {
	if !event.AffectsVideo() {
		return nil
	}
	if event.Type == kafka.EventVideoDeleted {
		return s.indexer.DeleteVideo(ctx, event.TargetID)
	}
	return s.SyncVideo(ctx, event.TargetID)
}

// SyncVideo 重新计算计数并写入文档；视频已不存在时删除文档
func (s *IndexService) SyncVideo(ctx context.Context, videoID uuid.UUID) error {
	videos, err := s.videos.GetByIDsWithOwner(ctx, []uuid.UUID{videoID})
	if err != nil {
		return fmt.Errorf("load video: %w", err)
	}
	if len(videos) == 0 {
		return s.indexer.DeleteVideo(ctx, videoID)
	}

	likes, err := s.likes.CountByVideo(ctx, videoID)
	if err != nil {
		return fmt.Errorf("count likes: %w", err)
	}
	bookmarks, err := s.bookmarks.CountByVideo(ctx, videoID)
	if err != nil {
		return fmt.Errorf("count bookmarks: %w", err)
	}

	return s.indexer.IndexVideo(ctx, &videos[0], likes, bookmarks)
}

// Reindex 全量重建索引，按发布时间分批写入
func (s *IndexService) Reindex(ctx context.Context, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 200
	}

	indexed := 0
	for offset := 0; ; offset += batchSize {
		videos, _, err := s.videos.Search(ctx, "", offset, batchSize)
		if err != nil {
			return indexed, fmt.Errorf("list videos: %w", err)
		}
		if len(videos) == 0 {
			break
		}

		ids := make([]uuid.UUID, 0, len(videos))
		for i := range videos {
			ids = append(ids, videos[i].ID)
		}
		likeCounts, err := s.countByVideo(ctx, s.likes, ids)
		if err != nil {
			return indexed, err
		}
		bookmarkCounts, err := s.countByVideo(ctx, s.bookmarks, ids)
		if err != nil {
			return indexed, err
		}

		docs := make([]*elasticsearch.VideoDoc, 0, len(videos))
		for i := range videos {
			id := videos[i].ID
			docs = append(docs, elasticsearch.NewVideoDoc(&videos[i], likeCounts[id], bookmarkCounts[id]))
		}

		success, failed, err := s.indexer.BulkIndex(ctx, docs)
		if err != nil {
			return indexed, fmt.Errorf("bulk index: %w", err)
		}
		if failed > 0 {
			logger.Warn("Some documents failed to index", zap.Int("failed", failed))
		}
		indexed += success

		if len(videos) < batchSize {
			break
		}
	}

	logger.Info("Reindex completed", zap.Int("indexed", indexed))
	return indexed, nil
}

func (s *IndexService) countByVideo(ctx context.Context, store RelationStore, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	rows, err := store.ListByVideos(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list relations: %w", err)
	}
	counts := make(map[uuid.UUID]int64, len(ids))
	for _, r := range rows {
		counts[r.VideoID]++
	}
	return counts, nil
}
