package router

import (
	"reel-go/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// Handlers 业务路由依赖的处理器
type Handlers struct {
	Auth   *handler.AuthHandler
	User   *handler.UserHandler
	Video  *handler.VideoHandler
	Media  *handler.MediaHandler
	Search *handler.SearchHandler
}

// Setup 注册所有业务路由
// authRequired 为认证中间件，toggleLimit 用于点赞、收藏和关注接口的限流
func Setup(r *gin.Engine, h *Handlers, authRequired, toggleLimit gin.HandlerFunc) {
	v1 := r.Group("/api/v1")

	// --- 认证模块 ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", authRequired, h.Auth.Logout)
	}

	// --- 用户模块 ---
	users := v1.Group("/users", authRequired)
	{
		users.GET("/session", h.User.GetSession)
		users.POST("/:id/follow", toggleLimit, h.User.ToggleFollow)
	}

	// --- 视频模块 ---
	videos := v1.Group("/videos", authRequired)
	{
		videos.GET("/feed", h.Video.GetFeed)
		videos.POST("", h.Video.CreateVideo)
		videos.POST("/upload-url", h.Media.CreateUploadURL)
		videos.DELETE("/:id", h.Video.DeleteVideo)
		videos.POST("/:id/like", toggleLimit, h.Video.ToggleLike)
		videos.POST("/:id/bookmark", toggleLimit, h.Video.ToggleBookmark)
	}

	// --- 搜索模块 ---
	search := v1.Group("/search", authRequired)
	{
		search.GET("/videos", h.Search.SearchVideos)
	}
}
