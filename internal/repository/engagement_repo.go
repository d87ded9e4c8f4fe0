package repository

import (
	"context"

	"reel-go/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	likesTable     = toggleTable{name: "likes", subjectCol: "user_id", objectCol: "video_id"}
	bookmarksTable = toggleTable{name: "bookmarks", subjectCol: "user_id", objectCol: "video_id"}
	followsTable   = toggleTable{name: "follows", subjectCol: "follower_id", objectCol: "followee_id"}
)

// VideoRelationRepository 用户对视频的二元关系（点赞、收藏）
type VideoRelationRepository struct {
	db    *gorm.DB
	table toggleTable
}

// NewLikeRepository 点赞关系
func NewLikeRepository(db *gorm.DB) *VideoRelationRepository {
	return &VideoRelationRepository{db: db, table: likesTable}
}

// NewBookmarkRepository 收藏关系
func NewBookmarkRepository(db *gorm.DB) *VideoRelationRepository {
	return &VideoRelationRepository{db: db, table: bookmarksTable}
}

// Toggle 翻转用户对视频的关系，返回翻转后是否存在
func (r *VideoRelationRepository) Toggle(ctx context.Context, userID, videoID uuid.UUID) (bool, error) {
	return toggle(ctx, r.db, r.table, userID, videoID)
}

// ListByVideos 批量获取视频上的全部关系行
func (r *VideoRelationRepository) ListByVideos(ctx context.Context, videoIDs []uuid.UUID) ([]model.VideoRelation, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}
	var rows []model.VideoRelation
	err := r.db.WithContext(ctx).Table(r.table.name).
		Select("user_id", "video_id").
		Where("video_id IN ?", videoIDs).
		Scan(&rows).Error
	return rows, err
}

// CountByVideo 统计单个视频的关系数
func (r *VideoRelationRepository) CountByVideo(ctx context.Context, videoID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(r.table.name).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Toggle 翻转关注关系
func (r *FollowRepository) Toggle(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	return toggle(ctx, r.db, followsTable, followerID, followeeID)
}

// FollowingAmong 返回 candidates 中已被 followerID 关注的用户
func (r *FollowRepository) FollowingAmong(ctx context.Context, followerID uuid.UUID, candidates []uuid.UUID) ([]uuid.UUID, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id IN ?", followerID, candidates).
		Pluck("followee_id", &ids).Error
	return ids, err
}

// ListFollowingIDs 用户关注的全部用户 ID，按关注先后排序
func (r *FollowRepository) ListFollowingIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ?", followerID).
		Order("created_at ASC").
		Pluck("followee_id", &ids).Error
	return ids, err
}
