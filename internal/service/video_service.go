package service

import (
	"context"
	"errors"
	"strings"

	"reel-go/internal/api/dto"
	"reel-go/internal/infra/kafka"
	"reel-go/internal/model"
	"reel-go/internal/repository"
	"reel-go/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type VideoService struct {
	videos VideoStore
	events EventPublisher
}

func NewVideoService(videos VideoStore, events EventPublisher) *VideoService {
	return &VideoService{videos: videos, events: events}
}

// CreateVideo 发布视频，空描述按未填写处理
func (s *VideoService) CreateVideo(ctx context.Context, userID uuid.UUID, req *dto.CreateVideoRequest) (*dto.VideoInfo, error) {
	title := strings.TrimSpace(req.Title)
	if n := len([]rune(title)); n < 2 || n > 50 {
		return nil, NewValidationError("title", "标题长度必须在 2-50 个字符之间")
	}

	var description *string
	if req.Description != nil {
		if d := strings.TrimSpace(*req.Description); d != "" {
			description = &d
		}
	}

	video := &model.Video{
		UserID:      userID,
		Title:       title,
		Description: description,
		VideoURL:    strings.TrimSpace(req.VideoURL),
	}

	if err := s.videos.Create(ctx, video); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	logger.Info("Video created",
		zap.String("video_id", video.ID.String()),
		zap.String("user_id", userID.String()),
	)
	publishEvent(ctx, s.events, kafka.EventVideoCreated, userID, video.ID, true)

	return toVideoInfo(video), nil
}

// DeleteVideo 删除视频（仅作者），点赞和收藏级联删除
func (s *VideoService) DeleteVideo(ctx context.Context, userID, videoID uuid.UUID) error {
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	if video.UserID != userID {
		return ErrVideoNoPermission
	}

	deleted, err := s.videos.Delete(ctx, videoID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrVideoNotFound
	}

	logger.Info("Video deleted",
		zap.String("video_id", videoID.String()),
		zap.String("user_id", userID.String()),
	)
	publishEvent(ctx, s.events, kafka.EventVideoDeleted, userID, videoID, false)
	return nil
}

func toVideoInfo(v *model.Video) *dto.VideoInfo {
	return &dto.VideoInfo{
		ID:          v.ID,
		UserID:      v.UserID,
		Title:       v.Title,
		Description: v.Description,
		VideoURL:    v.VideoURL,
		CreatedAt:   v.CreatedAt.UTC(),
		UpdatedAt:   v.UpdatedAt.UTC(),
	}
}
