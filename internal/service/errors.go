package service

import (
	"errors"
)

var (
	ErrUnauthorized      = errors.New("未登录或登录已失效")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrVideoNotFound     = errors.New("视频不存在")
	ErrEmailExists       = errors.New("该邮箱已被注册")
	ErrDisplayNameExists = errors.New("该用户名已被占用")
	ErrInvalidCredential = errors.New("邮箱或密码错误")
	ErrVideoNoPermission = errors.New("无权操作该视频")

	ErrCannotFollowSelf = NewValidationError("id", "不能关注自己")
)

// ValidationError 参数或业务规则校验失败，Field 为出错字段
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
