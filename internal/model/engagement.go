package model

import (
	"time"

	"github.com/google/uuid"
)

// Like 点赞记录，(user_id, video_id) 唯一，行存在即为已点赞
type Like struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;comment:点赞记录ID" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_likes_user_video;comment:点赞用户ID" json:"user_id"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_likes_user_video;index:idx_likes_video_id;comment:被点赞视频ID" json:"video_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:点赞时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`
}

func (Like) TableName() string {
	return "likes"
}

// Bookmark 收藏记录，结构与约束同 Like，是独立的关系
type Bookmark struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;comment:收藏记录ID" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_bookmarks_user_video;comment:收藏用户ID" json:"user_id"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_bookmarks_user_video;index:idx_bookmarks_video_id;comment:被收藏视频ID" json:"video_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:收藏时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

// Follow 关注关系，follower 关注 followee，主键 (follower_id, followee_id)
type Follow struct {
	FollowerID uuid.UUID `gorm:"type:uuid;primaryKey;comment:粉丝用户ID" json:"follower_id"`
	FolloweeID uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_follows_followee_id;comment:被关注用户ID" json:"followee_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime;comment:关注时间" json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}

// VideoRelation 点赞/收藏在视频流聚合时的投影
type VideoRelation struct {
	UserID  uuid.UUID
	VideoID uuid.UUID
}
