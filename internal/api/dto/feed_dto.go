package dto

import (
	"time"

	"github.com/google/uuid"
)

// FeedQuery 视频流查询参数，limit 在服务层校验
type FeedQuery struct {
	Limit  string `form:"limit"`
	Cursor string `form:"cursor"`
}

// FeedUser 视频发布者
type FeedUser struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
}

// FeedStats 互动计数
type FeedStats struct {
	Likes     int `json:"likes"`
	Bookmarks int `json:"bookmarks"`
}

// FeedItem 视频流条目
type FeedItem struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	User         FeedUser  `json:"user"`
	Description  string    `json:"description"`
	Stats        FeedStats `json:"stats"`
	IsLiked      bool      `json:"is_liked"`
	IsBookmarked bool      `json:"is_bookmarked"`
	IsFollowing  bool      `json:"is_following"`
	VideoURL     string    `json:"video_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// FeedPagination 游标分页信息，没有下一页时 next_cursor 为 null
type FeedPagination struct {
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

// FeedData 视频流
type FeedData struct {
	Feeds      []FeedItem     `json:"feeds"`
	Pagination FeedPagination `json:"pagination"`
}
