package dto

import (
	"time"

	"github.com/google/uuid"
)

// SearchVideoRequest 视频搜索请求参数
type SearchVideoRequest struct {
	Q        string `form:"q" binding:"required,max=100"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

// SearchVideoInfo 搜索结果中的视频
type SearchVideoInfo struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	VideoURL    string              `json:"video_url"`
	User        FeedUser            `json:"user"`
	CreatedAt   time.Time           `json:"created_at"`
	Highlight   map[string][]string `json:"highlight,omitempty"`
}

// SearchVideoData 搜索结果，source 为 elasticsearch 或 database
type SearchVideoData struct {
	Videos     []SearchVideoInfo `json:"videos"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int64             `json:"total_pages"`
	Source     string            `json:"source"`
}
