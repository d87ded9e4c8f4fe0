package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"reel-go/internal/api/dto"
	"reel-go/internal/model"
	"reel-go/internal/repository"
	"reel-go/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var displayNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

type AuthService struct {
	users   UserStore
	follows FollowStore
	tokens  TokenRevoker
}

func NewAuthService(users UserStore, follows FollowStore, tokens TokenRevoker) *AuthService {
	return &AuthService{users: users, follows: follows, tokens: tokens}
}

// NormalizeEmail 邮箱去空格并转小写
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeDisplayName 用户名去空格并转小写
func NormalizeDisplayName(displayName string) string {
	return strings.ToLower(strings.TrimSpace(displayName))
}

// Register 用户注册
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserInfo, error) {
	email := NormalizeEmail(req.Email)
	displayName := NormalizeDisplayName(req.DisplayName)
	if !displayNamePattern.MatchString(displayName) {
		return nil, NewValidationError("display_name", "用户名只能包含字母、数字和下划线")
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	exists, err = s.users.ExistsByDisplayName(ctx, displayName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDisplayNameExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:       email,
		Name:        strings.TrimSpace(req.Name),
		DisplayName: displayName,
		Password:    hashedPassword,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// 并发注册时由唯一约束兜底
		if constraint, ok := repository.UniqueViolation(err); ok {
			if constraint == repository.ConstraintUsersDisplayName {
				return nil, ErrDisplayNameExists
			}
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return toUserInfo(user), nil
}

// Login 用户登录，返回 token 数据
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenData, error) {
	user, err := s.users.GetByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredential
	}

	token, claims, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.TokenData{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: int(claims.ExpiresIn().Round(time.Second).Seconds()),
		User:      *toUserInfo(user),
	}, nil
}

// Logout 注销当前 Token，黑名单有效期为 Token 剩余寿命
func (s *AuthService) Logout(ctx context.Context, claims *utils.Claims) error {
	if claims == nil {
		return ErrUnauthorized
	}
	return s.tokens.Revoke(ctx, claims.ID, claims.ExpiresIn())
}

// GetSession 当前用户信息及其关注列表
func (s *AuthService) GetSession(ctx context.Context, userID uuid.UUID) (*dto.SessionData, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	following, err := s.follows.ListFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if following == nil {
		following = []uuid.UUID{}
	}

	return &dto.SessionData{
		User:      *toUserInfo(user),
		Following: following,
	}, nil
}

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	}
}
