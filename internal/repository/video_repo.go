package repository

import (
	"context"
	"strings"
	"time"

	"reel-go/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create 创建视频
func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

// GetByID 根据 ID 查询视频
func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	var video model.Video
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// Exists 检查视频是否存在
func (r *VideoRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", id).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete 删除视频，点赞和收藏由外键级联删除
func (r *VideoRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Video{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListWindow 视频流游标窗口：created_at 倒序、id 正序，cursor 为开区间上界
func (r *VideoRepository) ListWindow(ctx context.Context, cursor *time.Time, limit int) ([]model.VideoCursor, error) {
	query := r.db.WithContext(ctx).Model(&model.Video{}).Select("id", "created_at")
	if cursor != nil {
		query = query.Where("created_at < ?", *cursor)
	}

	var rows []model.VideoCursor
	err := query.Order("created_at DESC").Order("id ASC").Limit(limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByIDsWithOwner 批量查询视频并内连接发布者，顺序不保证
func (r *VideoRepository) GetByIDsWithOwner(ctx context.Context, ids []uuid.UUID) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var videos []model.Video
	err := r.db.WithContext(ctx).InnerJoins("User").Where("videos.id IN ?", ids).Find(&videos).Error
	return videos, err
}

// Search 按标题或描述模糊匹配（ES 不可用时的降级查询）
func (r *VideoRepository) Search(ctx context.Context, keyword string, offset, limit int) ([]model.Video, int64, error) {
	pattern := "%" + escapeLike(keyword) + "%"
	filtered := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.Video{}).
			Where("videos.title ILIKE ? OR videos.description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []model.Video
	err := filtered().InnerJoins("User").
		Order("videos.created_at DESC").Order("videos.id ASC").
		Offset(offset).Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
