package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateVideoRequest 发布视频请求，video_url 为对象存储上的播放地址
type CreateVideoRequest struct {
	Title       string  `json:"title" binding:"required,min=2,max=50"`
	Description *string `json:"description" binding:"omitempty,max=150"`
	VideoURL    string  `json:"video_url" binding:"required,url,max=2048"`
}

// VideoInfo 视频信息
type VideoInfo struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	VideoURL    string    `json:"video_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateVideoData 发布视频返回
type CreateVideoData struct {
	Video VideoInfo `json:"video"`
}

// LikeResult 点赞翻转结果
type LikeResult struct {
	IsLiked bool `json:"is_liked"`
}

// BookmarkResult 收藏翻转结果
type BookmarkResult struct {
	IsBookmarked bool `json:"is_bookmarked"`
}

// UploadURLRequest 申请直传地址
type UploadURLRequest struct {
	FileName string `json:"file_name" binding:"required,max=255"`
}

// UploadURLData 预签名上传地址；上传完成后用 video_url 发布视频
type UploadURLData struct {
	UploadURL   string `json:"upload_url"`
	VideoURL    string `json:"video_url"`
	ObjectName  string `json:"object_name"`
	ContentType string `json:"content_type"`
	ExpiresIn   int    `json:"expires_in"`
}
