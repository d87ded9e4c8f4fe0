package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video 视频模型，媒体文件托管在对象存储，这里只保存播放地址
type Video struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;comment:视频标识" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_videos_user_id;comment:发布者ID" json:"user_id"`
	Title       string    `gorm:"size:50;not null;comment:视频标题" json:"title"`
	Description *string   `gorm:"size:150;comment:视频描述" json:"description"`
	VideoURL    string    `gorm:"not null;comment:视频播放地址" json:"video_url"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_videos_created_at_id,priority:1,sort:desc;comment:创建时间" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Video) TableName() string {
	return "videos"
}

// BeforeCreate 未指定 ID 时生成 UUID
func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// VideoCursor 视频流游标窗口行，只包含排序所需字段
type VideoCursor struct {
	ID        uuid.UUID
	CreatedAt time.Time
}
