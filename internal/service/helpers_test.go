package service

import (
	"context"
	"testing"
	"time"

	"reel-go/internal/config"
	"reel-go/internal/model"
	"reel-go/internal/repository/memory"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	store      *memory.Store
	events     *memory.Events
	tokens     *memory.Tokens
	auth       *AuthService
	feed       *FeedService
	engagement *EngagementService
	videos     *VideoService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	config.Set(&config.Config{
		App: config.AppConfig{Name: "reel-go-test"},
		JWT: config.JWTConfig{Secret: "test-secret", ExpireHours: 1},
	})

	store := memory.NewStore()
	events := &memory.Events{}
	tokens := memory.NewTokens()
	return &fixture{
		store:      store,
		events:     events,
		tokens:     tokens,
		auth:       NewAuthService(store.Users(), store.Follows(), tokens),
		feed:       NewFeedService(store.Videos(), store.Likes(), store.Bookmarks(), store.Follows()),
		engagement: NewEngagementService(store.Users(), store.Videos(), store.Likes(), store.Bookmarks(), store.Follows(), events),
		videos:     NewVideoService(store.Videos(), events),
	}
}

func (f *fixture) user(t *testing.T, name string) *model.User {
	t.Helper()
	u := &model.User{Email: name + "@example.com", Name: name, DisplayName: name, Password: "x"}
	require.NoError(t, f.store.Users().Create(context.Background(), u))
	return u
}

func (f *fixture) video(t *testing.T, owner *model.User, title string, createdAt time.Time) *model.Video {
	t.Helper()
	v := &model.Video{UserID: owner.ID, Title: title, VideoURL: "https://cdn/" + title + ".mp4", CreatedAt: createdAt}
	require.NoError(t, f.store.Videos().Create(context.Background(), v))
	return v
}

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
