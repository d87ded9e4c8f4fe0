package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"reel-go/internal/api/dto"
	"reel-go/internal/model"
	"reel-go/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeedLimit(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"", DefaultFeedLimit, false},
		{"1", 1, false},
		{"100", 100, false},
		{"0", 0, true},
		{"101", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
		{"2.5", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseFeedLimit(tt.raw)
			if tt.wantErr {
				var verr *ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, "limit", verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetFeedEmpty(t *testing.T) {
	f := newFixture(t)
	viewer := f.user(t, "viewer")

	data, err := f.feed.GetFeed(context.Background(), viewer.ID, &dto.FeedQuery{})
	require.NoError(t, err)
	assert.NotNil(t, data.Feeds)
	assert.Empty(t, data.Feeds)
	assert.False(t, data.Pagination.HasMore)
	assert.Nil(t, data.Pagination.NextCursor)
}

func TestGetFeedDefaultLimitAndCursor(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner")
	for i := 0; i < 12; i++ {
		f.video(t, owner, "v", baseTime.Add(time.Duration(i)*time.Minute))
	}

	data, err := f.feed.GetFeed(context.Background(), owner.ID, &dto.FeedQuery{})
	require.NoError(t, err)
	require.Len(t, data.Feeds, DefaultFeedLimit)
	assert.True(t, data.Pagination.HasMore)
	require.NotNil(t, data.Pagination.NextCursor)

	last := data.Feeds[len(data.Feeds)-1]
	assert.Equal(t, last.CreatedAt.Format(time.RFC3339Nano), *data.Pagination.NextCursor)
	assert.True(t, data.Feeds[0].CreatedAt.Equal(baseTime.Add(11*time.Minute)))
}

func TestGetFeedPaginationCoversAllOnce(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner")
	for i := 0; i < 25; i++ {
		f.video(t, owner, "v", baseTime.Add(time.Duration(i)*time.Second))
	}

	seen := make(map[uuid.UUID]bool)
	var pages []int
	cursor := ""
	for {
		data, err := f.feed.GetFeed(context.Background(), owner.ID, &dto.FeedQuery{Limit: "10", Cursor: cursor})
		require.NoError(t, err)
		pages = append(pages, len(data.Feeds))

		var prev time.Time
		for i, item := range data.Feeds {
			assert.False(t, seen[item.ID], "duplicate item across pages")
			seen[item.ID] = true
			if i > 0 {
				assert.False(t, item.CreatedAt.After(prev), "items not in descending order")
			}
			prev = item.CreatedAt
		}

		if !data.Pagination.HasMore {
			assert.Nil(t, data.Pagination.NextCursor)
			break
		}
		cursor = *data.Pagination.NextCursor
	}

	assert.Equal(t, []int{10, 10, 5}, pages)
	assert.Len(t, seen, 25)
}

func TestGetFeedExactLimitHasNoMore(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner")
	for i := 0; i < 3; i++ {
		f.video(t, owner, "v", baseTime.Add(time.Duration(i)*time.Second))
	}

	data, err := f.feed.GetFeed(context.Background(), owner.ID, &dto.FeedQuery{Limit: "3"})
	require.NoError(t, err)
	assert.Len(t, data.Feeds, 3)
	assert.False(t, data.Pagination.HasMore)
	assert.Nil(t, data.Pagination.NextCursor)
}

func TestGetFeedInvalidCursorIgnored(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner")
	f.video(t, owner, "only", baseTime)

	data, err := f.feed.GetFeed(context.Background(), owner.ID, &dto.FeedQuery{Cursor: "not-a-date"})
	require.NoError(t, err)
	assert.Len(t, data.Feeds, 1)
}

func TestGetFeedCursorIsExclusive(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner")
	f.video(t, owner, "older", baseTime)
	f.video(t, owner, "boundary", baseTime.Add(time.Minute))

	data, err := f.feed.GetFeed(context.Background(), owner.ID, &dto.FeedQuery{
		Cursor: baseTime.Add(time.Minute).Format(time.RFC3339Nano),
	})
	require.NoError(t, err)
	require.Len(t, data.Feeds, 1)
	assert.Equal(t, "older", data.Feeds[0].Title)
}

func TestGetFeedTieBreakByID(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner")
	for i := 0; i < 4; i++ {
		f.video(t, owner, "same", baseTime)
	}

	data, err := f.feed.GetFeed(context.Background(), owner.ID, &dto.FeedQuery{})
	require.NoError(t, err)
	require.Len(t, data.Feeds, 4)
	for i := 1; i < len(data.Feeds); i++ {
		assert.Negative(t, bytes.Compare(data.Feeds[i-1].ID[:], data.Feeds[i].ID[:]))
	}
}

func TestGetFeedStatsAndFlags(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	viewer := f.user(t, "viewer")
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	desc := "hello"
	popular := f.video(t, alice, "popular", baseTime.Add(2*time.Minute))
	quiet := &model.Video{UserID: bob.ID, Title: "quiet", Description: &desc, VideoURL: "u", CreatedAt: baseTime.Add(time.Minute)}
	require.NoError(t, f.store.Videos().Create(ctx, quiet))
	mine := f.video(t, viewer, "mine", baseTime)

	for _, u := range []*model.User{viewer, alice, bob} {
		_, err := f.engagement.ToggleLike(ctx, u.ID, popular.ID)
		require.NoError(t, err)
	}
	_, err := f.engagement.ToggleBookmark(ctx, bob.ID, popular.ID)
	require.NoError(t, err)
	_, err = f.engagement.ToggleBookmark(ctx, viewer.ID, quiet.ID)
	require.NoError(t, err)
	_, err = f.engagement.ToggleFollow(ctx, viewer.ID, alice.ID)
	require.NoError(t, err)

	data, err := f.feed.GetFeed(ctx, viewer.ID, &dto.FeedQuery{})
	require.NoError(t, err)
	require.Len(t, data.Feeds, 3)

	p, q, m := data.Feeds[0], data.Feeds[1], data.Feeds[2]
	assert.Equal(t, popular.ID, p.ID)
	assert.Equal(t, dto.FeedStats{Likes: 3, Bookmarks: 1}, p.Stats)
	assert.True(t, p.IsLiked)
	assert.False(t, p.IsBookmarked)
	assert.True(t, p.IsFollowing)
	assert.Equal(t, "alice", p.User.DisplayName)
	assert.Equal(t, "", p.Description)

	assert.Equal(t, quiet.ID, q.ID)
	assert.Equal(t, dto.FeedStats{Likes: 0, Bookmarks: 1}, q.Stats)
	assert.False(t, q.IsLiked)
	assert.True(t, q.IsBookmarked)
	assert.False(t, q.IsFollowing)
	assert.Equal(t, "hello", q.Description)

	assert.Equal(t, mine.ID, m.ID)
	assert.False(t, m.IsFollowing)
	assert.Equal(t, dto.FeedStats{}, m.Stats)
}

// vanishingVideos 在窗口查询之后删除指定视频，模拟并发删除
type vanishingVideos struct {
	*memory.Videos
	victim uuid.UUID
}

func (v *vanishingVideos) ListWindow(ctx context.Context, cursor *time.Time, limit int) ([]model.VideoCursor, error) {
	rows, err := v.Videos.ListWindow(ctx, cursor, limit)
	if err != nil {
		return nil, err
	}
	_, err = v.Videos.Delete(ctx, v.victim)
	return rows, err
}

func TestGetFeedSkipsVideoDeletedDuringHydration(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner")
	newer := f.video(t, owner, "newer", baseTime.Add(time.Minute))
	doomed := f.video(t, owner, "doomed", baseTime)

	videos := &vanishingVideos{Videos: f.store.Videos(), victim: doomed.ID}
	feed := NewFeedService(videos, f.store.Likes(), f.store.Bookmarks(), f.store.Follows())

	data, err := feed.GetFeed(context.Background(), owner.ID, &dto.FeedQuery{})
	require.NoError(t, err)
	require.Len(t, data.Feeds, 1)
	assert.Equal(t, newer.ID, data.Feeds[0].ID)
}

func TestGetFeedLimitValidation(t *testing.T) {
	f := newFixture(t)
	viewer := f.user(t, "viewer")

	_, err := f.feed.GetFeed(context.Background(), viewer.ID, &dto.FeedQuery{Limit: "500"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "limit", verr.Field)
}
