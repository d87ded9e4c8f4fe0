package handler

import (
	"errors"

	"reel-go/internal/api/middleware"
	"reel-go/internal/api/response"
	"reel-go/internal/api/validation"
	"reel-go/internal/service"
	"reel-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// handleServiceError 把服务层错误映射为 HTTP 响应，未知错误记录日志并返回 500
func handleServiceError(c *gin.Context, op string, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		response.ValidationFailed(c, verr.Field, verr.Message)
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrInvalidCredential):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrVideoNoPermission):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrEmailExists), errors.Is(err, service.ErrDisplayNameExists):
		response.Conflict(c, err.Error())
	default:
		logger.Error(op+" failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
		response.InternalError(c, "服务器内部错误，请稍后重试")
	}
}

// handleBindError 请求体或参数绑定失败
func handleBindError(c *gin.Context, err error) {
	if field, msg, ok := validation.FieldError(err); ok {
		response.ValidationFailed(c, field, msg)
		return
	}
	response.ValidationFailed(c, "", "请求参数无效: "+err.Error())
}

// parseIDParam 解析路径中的 UUID 参数
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.ValidationFailed(c, name, "无效的 ID")
		return uuid.Nil, false
	}
	return id, true
}

// currentUserID 取当前登录用户，缺失时直接返回 401
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return uuid.Nil, false
	}
	return userID, true
}
