package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserInfo 用户公开信息（不含密码）
type UserInfo struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// SessionData 当前会话用户，following 为已关注用户 ID（按关注先后）
type SessionData struct {
	User      UserInfo    `json:"user"`
	Following []uuid.UUID `json:"following"`
}

// FollowResult 关注/取消关注结果
type FollowResult struct {
	IsFollowing bool `json:"is_following"`
}
