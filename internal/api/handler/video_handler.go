package handler

import (
	"reel-go/internal/api/dto"
	"reel-go/internal/api/response"
	"reel-go/internal/service"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	feedService       *service.FeedService
	videoService      *service.VideoService
	engagementService *service.EngagementService
}

func NewVideoHandler(feedService *service.FeedService, videoService *service.VideoService, engagementService *service.EngagementService) *VideoHandler {
	return &VideoHandler{
		feedService:       feedService,
		videoService:      videoService,
		engagementService: engagementService,
	}
}

// GetFeed 视频流
// @Summary 获取视频流
// @Description 按发布时间倒序的游标分页视频流，附带点赞/收藏数及当前用户的互动状态
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param limit query int false "每页条数 1-100，默认 10"
// @Param cursor query string false "上一页返回的 next_cursor（ISO-8601）"
// @Success 200 {object} response.Response{data=dto.FeedData} "获取成功"
// @Failure 400 {object} response.ErrorResponse "limit 无效"
// @Router /videos/feed [get]
func (h *VideoHandler) GetFeed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var q dto.FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		handleBindError(c, err)
		return
	}

	data, err := h.feedService.GetFeed(c.Request.Context(), userID, &q)
	if err != nil {
		handleServiceError(c, "Get feed", err)
		return
	}

	response.OK(c, "获取成功", data)
}

// CreateVideo 发布视频
// @Summary 发布视频
// @Description 视频文件需先通过直传地址上传，这里只登记标题、描述和播放地址
// @Tags 视频
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateVideoRequest true "视频信息"
// @Success 201 {object} response.Response{data=dto.CreateVideoData} "发布成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Router /videos [post]
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	video, err := h.videoService.CreateVideo(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, "Create video", err)
		return
	}

	response.Created(c, "视频发布成功", dto.CreateVideoData{Video: *video})
}

// DeleteVideo 删除视频
// @Summary 删除视频
// @Description 仅作者可删除，点赞和收藏一并删除
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path string true "视频ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 403 {object} response.ErrorResponse "无权操作"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	videoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.videoService.DeleteVideo(c.Request.Context(), userID, videoID); err != nil {
		handleServiceError(c, "Delete video", err)
		return
	}

	response.OK(c, "删除成功", nil)
}

// ToggleLike 点赞/取消点赞
// @Summary 点赞或取消点赞
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path string true "视频ID"
// @Success 200 {object} response.Response{data=dto.LikeResult} "操作成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Failure 429 {object} response.ErrorResponse "操作过于频繁"
// @Router /videos/{id}/like [post]
func (h *VideoHandler) ToggleLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	videoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.engagementService.ToggleLike(c.Request.Context(), userID, videoID)
	if err != nil {
		handleServiceError(c, "Toggle like", err)
		return
	}

	response.OK(c, "操作成功", result)
}

// ToggleBookmark 收藏/取消收藏
// @Summary 收藏或取消收藏
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path string true "视频ID"
// @Success 200 {object} response.Response{data=dto.BookmarkResult} "操作成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Failure 429 {object} response.ErrorResponse "操作过于频繁"
// @Router /videos/{id}/bookmark [post]
func (h *VideoHandler) ToggleBookmark(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	videoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.engagementService.ToggleBookmark(c.Request.Context(), userID, videoID)
	if err != nil {
		handleServiceError(c, "Toggle bookmark", err)
		return
	}

	response.OK(c, "操作成功", result)
}
