package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"reel-go/internal/api/dto"
	"reel-go/internal/model"
	"reel-go/internal/repository"
	"reel-go/internal/repository/memory"
	"reel-go/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerReq(email, displayName string) *dto.RegisterRequest {
	return &dto.RegisterRequest{Name: "Alice", Email: email, Password: "secret123", DisplayName: displayName}
}

func TestRegisterNormalizes(t *testing.T) {
	f := newFixture(t)

	info, err := f.auth.Register(context.Background(), registerReq("  Alice@Example.COM ", "Alice_01"))
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", info.Email)
	assert.Equal(t, "alice_01", info.DisplayName)
	assert.NotEqual(t, uuid.Nil, info.ID)

	stored, err := f.store.Users().GetByID(context.Background(), info.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, utils.VerifyPassword("secret123", stored.Password))
}

func TestRegisterConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.auth.Register(ctx, registerReq("alice@example.com", "alice"))
	require.NoError(t, err)

	_, err = f.auth.Register(ctx, registerReq("ALICE@example.com", "other"))
	assert.ErrorIs(t, err, ErrEmailExists)

	_, err = f.auth.Register(ctx, registerReq("new@example.com", "ALICE"))
	assert.ErrorIs(t, err, ErrDisplayNameExists)
}

func TestRegisterInvalidDisplayName(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Register(context.Background(), registerReq("a@example.com", "has space"))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "display_name", verr.Field)
}

// racingUsers 存在性检查通过但插入时撞上唯一约束
type racingUsers struct {
	*memory.Users
	constraint string
}

func (r racingUsers) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (r racingUsers) ExistsByDisplayName(context.Context, string) (bool, error) { return false, nil }
func (r racingUsers) Create(context.Context, *model.User) error {
	return repository.NewUniqueViolation(r.constraint)
}

func TestRegisterRaceMapsUniqueViolation(t *testing.T) {
	f := newFixture(t)

	svc := NewAuthService(racingUsers{Users: f.store.Users(), constraint: repository.ConstraintUsersEmail}, f.store.Follows(), f.tokens)
	_, err := svc.Register(context.Background(), registerReq("a@example.com", "a"))
	assert.ErrorIs(t, err, ErrEmailExists)

	svc = NewAuthService(racingUsers{Users: f.store.Users(), constraint: repository.ConstraintUsersDisplayName}, f.store.Follows(), f.tokens)
	_, err = svc.Register(context.Background(), registerReq("a@example.com", "a"))
	assert.ErrorIs(t, err, ErrDisplayNameExists)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	info, err := f.auth.Register(ctx, registerReq("alice@example.com", "alice"))
	require.NoError(t, err)

	data, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "Alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", data.TokenType)
	assert.Equal(t, 3600, data.ExpiresIn)
	assert.Equal(t, info.ID, data.User.ID)

	claims, err := utils.ParseToken(data.Token)
	require.NoError(t, err)
	assert.Equal(t, info.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestLogoutRevokesToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.auth.Register(ctx, registerReq("alice@example.com", "alice"))
	require.NoError(t, err)
	data, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	claims, err := utils.ParseToken(data.Token)
	require.NoError(t, err)
	require.NoError(t, f.auth.Logout(ctx, claims))

	revoked, err := f.tokens.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.ErrorIs(t, f.auth.Logout(ctx, nil), ErrUnauthorized)
}

func TestGetSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "a")
	b := f.user(t, "b")
	c := f.user(t, "c")

	tick := baseTime
	f.store.SetClock(func() time.Time { tick = tick.Add(time.Second); return tick })
	_, err := f.engagement.ToggleFollow(ctx, a.ID, c.ID)
	require.NoError(t, err)
	_, err = f.engagement.ToggleFollow(ctx, a.ID, b.ID)
	require.NoError(t, err)

	session, err := f.auth.GetSession(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", session.User.DisplayName)
	assert.Equal(t, []uuid.UUID{c.ID, b.ID}, session.Following)

	empty, err := f.auth.GetSession(ctx, b.ID)
	require.NoError(t, err)
	assert.NotNil(t, empty.Following)
	assert.Empty(t, empty.Following)

	_, err = f.auth.GetSession(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
