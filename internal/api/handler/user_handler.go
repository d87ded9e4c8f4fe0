package handler

import (
	"reel-go/internal/api/response"
	"reel-go/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authService       *service.AuthService
	engagementService *service.EngagementService
}

func NewUserHandler(authService *service.AuthService, engagementService *service.EngagementService) *UserHandler {
	return &UserHandler{authService: authService, engagementService: engagementService}
}

// GetSession 当前会话
// @Summary 获取当前会话
// @Description 返回当前登录用户（不含密码）及其关注的用户 ID
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.SessionData} "获取成功"
// @Failure 401 {object} response.ErrorResponse "未认证"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/session [get]
func (h *UserHandler) GetSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	session, err := h.authService.GetSession(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, "Get session", err)
		return
	}

	response.OK(c, "获取成功", session)
}

// ToggleFollow 关注/取消关注
// @Summary 关注或取消关注用户
// @Description 翻转当前用户对目标用户的关注状态
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param id path string true "目标用户ID"
// @Success 200 {object} response.Response{data=dto.FollowResult} "操作成功"
// @Failure 400 {object} response.ErrorResponse "不能关注自己"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id}/follow [post]
func (h *UserHandler) ToggleFollow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.engagementService.ToggleFollow(c.Request.Context(), userID, targetID)
	if err != nil {
		handleServiceError(c, "Toggle follow", err)
		return
	}

	message := "已取消关注"
	if result.IsFollowing {
		message = "关注成功"
	}
	response.OK(c, message, result)
}
