package handler

import (
	"net/http"

	"reel-go/internal/api/dto"
	"reel-go/internal/api/middleware"
	"reel-go/internal/api/response"
	"reel-go/internal/service"

	"github.com/gin-gonic/gin"
)

// CookieOptions 登录 cookie 设置
type CookieOptions struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	authService *service.AuthService
	cookie      CookieOptions
}

func NewAuthHandler(authService *service.AuthService, cookie CookieOptions) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// Register 用户注册
// @Summary 用户注册
// @Description 注册新用户账号，邮箱和用户名统一转为小写
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册信息"
// @Success 201 {object} response.Response{data=dto.UserInfo} "注册成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 409 {object} response.ErrorResponse "邮箱或用户名已存在"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	userInfo, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, "Register", err)
		return
	}

	response.Created(c, "注册成功", userInfo)
}

// Login 用户登录
// @Summary 用户登录
// @Description 邮箱密码登录，返回 JWT 并写入 httpOnly cookie
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} response.Response{data=dto.TokenData} "登录成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 401 {object} response.ErrorResponse "邮箱或密码错误"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	tokenData, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, "Login", err)
		return
	}

	h.setCookie(c, tokenData.Token, tokenData.ExpiresIn)
	response.OK(c, "登录成功", tokenData)
}

// Logout 退出登录
// @Summary 退出登录
// @Description 注销当前 Token 并清除 cookie
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "退出成功"
// @Failure 401 {object} response.ErrorResponse "未认证"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, _ := middleware.GetCurrentClaims(c)
	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		handleServiceError(c, "Logout", err)
		return
	}

	h.setCookie(c, "", -1)
	response.OK(c, "退出成功", nil)
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}
