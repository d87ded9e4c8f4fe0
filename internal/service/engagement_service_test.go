package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"reel-go/internal/infra/kafka"
	"reel-go/internal/repository"
	"reel-go/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLikeFlips(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "owner")
	fan := f.user(t, "fan")
	video := f.video(t, owner, "v", baseTime)

	res, err := f.engagement.ToggleLike(ctx, fan.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, res.IsLiked)

	res, err = f.engagement.ToggleLike(ctx, fan.ID, video.ID)
	require.NoError(t, err)
	assert.False(t, res.IsLiked)

	n, err := f.store.Likes().CountByVideo(ctx, video.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	events := f.events.Published()
	require.Len(t, events, 2)
	assert.Equal(t, kafka.EventLikeToggled, events[0].Type)
	assert.True(t, events[0].Active)
	assert.False(t, events[1].Active)
	assert.Equal(t, video.ID, events[1].TargetID)
}

func TestLikeAndBookmarkAreIndependent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "owner")
	video := f.video(t, owner, "v", baseTime)

	_, err := f.engagement.ToggleLike(ctx, owner.ID, video.ID)
	require.NoError(t, err)
	res, err := f.engagement.ToggleBookmark(ctx, owner.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, res.IsBookmarked)

	res, err = f.engagement.ToggleBookmark(ctx, owner.ID, video.ID)
	require.NoError(t, err)
	assert.False(t, res.IsBookmarked)

	n, err := f.store.Likes().CountByVideo(ctx, video.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestToggleOnMissingVideo(t *testing.T) {
	f := newFixture(t)
	fan := f.user(t, "fan")

	_, err := f.engagement.ToggleLike(context.Background(), fan.ID, uuid.New())
	assert.ErrorIs(t, err, ErrVideoNotFound)
	_, err = f.engagement.ToggleBookmark(context.Background(), fan.ID, uuid.New())
	assert.ErrorIs(t, err, ErrVideoNotFound)
	assert.Empty(t, f.events.Published())
}

// racingRelations 模拟存在性检查之后视频被删除
type racingRelations struct {
	*memory.Relations
}

func (racingRelations) Toggle(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, repository.NewForeignKeyViolation("likes_video_id_fkey")
}

func TestToggleLikeForeignKeyRace(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner")
	video := f.video(t, owner, "v", baseTime)

	svc := NewEngagementService(f.store.Users(), f.store.Videos(), racingRelations{f.store.Likes()}, f.store.Bookmarks(), f.store.Follows(), f.events)
	_, err := svc.ToggleLike(context.Background(), owner.ID, video.ID)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestToggleFollow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.user(t, "a")
	b := f.user(t, "b")

	res, err := f.engagement.ToggleFollow(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, res.IsFollowing)

	session, err := f.auth.GetSession(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b.ID}, session.Following)

	res, err = f.engagement.ToggleFollow(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, res.IsFollowing)

	session, err = f.auth.GetSession(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, session.Following)
}

func TestToggleFollowSelfRejected(t *testing.T) {
	f := newFixture(t)
	a := f.user(t, "a")

	_, err := f.engagement.ToggleFollow(context.Background(), a.ID, a.ID)
	assert.ErrorIs(t, err, ErrCannotFollowSelf)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "id", verr.Field)
}

func TestToggleFollowMissingUser(t *testing.T) {
	f := newFixture(t)
	a := f.user(t, "a")

	_, err := f.engagement.ToggleFollow(context.Background(), a.ID, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestToggleSucceedsWhenPublishFails(t *testing.T) {
	f := newFixture(t)
	f.events.Err = errors.New("broker down")
	owner := f.user(t, "owner")
	video := f.video(t, owner, "v", baseTime)

	res, err := f.engagement.ToggleLike(context.Background(), owner.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, res.IsLiked)
}

// stalledPublisher 模拟 broker 不可达：一直阻塞到 ctx 结束
type stalledPublisher struct {
	hadDeadline bool
}

func (p *stalledPublisher) Publish(ctx context.Context, _ *kafka.Event) error {
	_, p.hadDeadline = ctx.Deadline()
	<-ctx.Done()
	return ctx.Err()
}

func TestToggleBoundedWhenBrokerStalls(t *testing.T) {
	old := publishTimeout
	publishTimeout = 20 * time.Millisecond
	t.Cleanup(func() { publishTimeout = old })

	f := newFixture(t)
	owner := f.user(t, "owner")
	video := f.video(t, owner, "v", baseTime)

	pub := &stalledPublisher{}
	svc := NewEngagementService(f.store.Users(), f.store.Videos(), f.store.Likes(), f.store.Bookmarks(), f.store.Follows(), pub)

	start := time.Now()
	res, err := svc.ToggleLike(context.Background(), owner.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, res.IsLiked)
	assert.True(t, pub.hadDeadline)
	assert.Less(t, time.Since(start), time.Second)
}

func TestToggleWithoutPublisher(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner")
	video := f.video(t, owner, "v", baseTime)

	svc := NewEngagementService(f.store.Users(), f.store.Videos(), f.store.Likes(), f.store.Bookmarks(), f.store.Follows(), nil)
	res, err := svc.ToggleBookmark(context.Background(), owner.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, res.IsBookmarked)
}

func TestConcurrentTogglesByManyUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "owner")
	video := f.video(t, owner, "v", baseTime)

	const n = 20
	fans := make([]uuid.UUID, n)
	for i := range fans {
		fans[i] = f.user(t, "fan"+string(rune('a'+i))).ID
	}

	var wg sync.WaitGroup
	for _, id := range fans {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := f.engagement.ToggleLike(ctx, id, video.ID)
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	count, err := f.store.Likes().CountByVideo(ctx, video.ID)
	require.NoError(t, err)
	assert.EqualValues(t, n, count)
}
