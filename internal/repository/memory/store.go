// Package memory 提供仓储接口的内存实现，供服务层和接口层测试使用
package memory

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"reel-go/internal/infra/kafka"
	"reel-go/internal/model"
	"reel-go/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type relationKey struct {
	subject uuid.UUID
	object  uuid.UUID
}

type relationRow struct {
	key       relationKey
	createdAt time.Time
}

// Store 所有表共用一把锁，删除时的级联与数据库一致
type Store struct {
	mu        sync.RWMutex
	now       func() time.Time
	users     map[uuid.UUID]model.User
	videos    map[uuid.UUID]model.Video
	likes     map[relationKey]relationRow
	bookmarks map[relationKey]relationRow
	follows   map[relationKey]relationRow
}

func NewStore() *Store {
	return &Store{
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		users:     make(map[uuid.UUID]model.User),
		videos:    make(map[uuid.UUID]model.Video),
		likes:     make(map[relationKey]relationRow),
		bookmarks: make(map[relationKey]relationRow),
		follows:   make(map[relationKey]relationRow),
	}
}

// SetClock 替换时钟，便于构造确定的 created_at
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Users() *Users { return &Users{s: s} }
func (s *Store) Videos() *Videos { return &Videos{s: s} }
func (s *Store) Likes() *Relations { return &Relations{s: s, rows: func() map[relationKey]relationRow { return s.likes }} }
func (s *Store) Bookmarks() *Relations { return &Relations{s: s, rows: func() map[relationKey]relationRow { return s.bookmarks }} }
func (s *Store) Follows() *Follows { return &Follows{s: s} }

// Users 用户表
type Users struct{ s *Store }

func (u *Users) Create(_ context.Context, user *model.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	for _, existing := range u.s.users {
		if existing.Email == user.Email {
			return repository.NewUniqueViolation(repository.ConstraintUsersEmail)
		}
		if existing.DisplayName == user.DisplayName {
			return repository.NewUniqueViolation(repository.ConstraintUsersDisplayName)
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := u.s.now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	stored := *user
	stored.Videos = nil
	u.s.users[user.ID] = stored
	return nil
}

func (u *Users) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	user, ok := u.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (u *Users) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, user := range u.s.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (u *Users) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := u.GetByEmail(ctx, email)
	return err == nil, nil
}

func (u *Users) ExistsByDisplayName(_ context.Context, displayName string) (bool, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, user := range u.s.users {
		if user.DisplayName == displayName {
			return true, nil
		}
	}
	return false, nil
}

func (u *Users) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	_, ok := u.s.users[id]
	return ok, nil
}

// Videos 视频表
type Videos struct{ s *Store }

func (v *Videos) Create(_ context.Context, video *model.Video) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	if _, ok := v.s.users[video.UserID]; !ok {
		return repository.NewForeignKeyViolation("videos_user_id_fkey")
	}
	if video.ID == uuid.Nil {
		video.ID = uuid.New()
	}
	now := v.s.now()
	if video.CreatedAt.IsZero() {
		video.CreatedAt = now
	}
	video.UpdatedAt = now

	stored := *video
	stored.User = model.User{}
	v.s.videos[video.ID] = stored
	return nil
}

func (v *Videos) GetByID(_ context.Context, id uuid.UUID) (*model.Video, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	video, ok := v.s.videos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &video, nil
}

func (v *Videos) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	_, ok := v.s.videos[id]
	return ok, nil
}

// Delete 删除视频并级联删除点赞和收藏
func (v *Videos) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := v.s.videos[id]; !ok {
		return false, nil
	}
	delete(v.s.videos, id)
	for _, rows := range []map[relationKey]relationRow{v.s.likes, v.s.bookmarks} {
		for key := range rows {
			if key.object == id {
				delete(rows, key)
			}
		}
	}
	return true, nil
}

func (v *Videos) ListWindow(_ context.Context, cursor *time.Time, limit int) ([]model.VideoCursor, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()

	rows := make([]model.VideoCursor, 0, len(v.s.videos))
	for _, video := range v.s.videos {
		if cursor != nil && !video.CreatedAt.Before(*cursor) {
			continue
		}
		rows = append(rows, model.VideoCursor{ID: video.ID, CreatedAt: video.CreatedAt})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return bytes.Compare(rows[i].ID[:], rows[j].ID[:]) < 0
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (v *Videos) GetByIDsWithOwner(_ context.Context, ids []uuid.UUID) ([]model.Video, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()

	videos := make([]model.Video, 0, len(ids))
	for _, id := range ids {
		video, ok := v.s.videos[id]
		if !ok {
			continue
		}
		owner, ok := v.s.users[video.UserID]
		if !ok {
			continue
		}
		video.User = owner
		videos = append(videos, video)
	}
	return videos, nil
}

func (v *Videos) Search(_ context.Context, keyword string, offset, limit int) ([]model.Video, int64, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()

	needle := strings.ToLower(keyword)
	var matched []model.Video
	for _, video := range v.s.videos {
		desc := ""
		if video.Description != nil {
			desc = *video.Description
		}
		if strings.Contains(strings.ToLower(video.Title), needle) || strings.Contains(strings.ToLower(desc), needle) {
			video.User = v.s.users[video.UserID]
			matched = append(matched, video)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return bytes.Compare(matched[i].ID[:], matched[j].ID[:]) < 0
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []model.Video{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

// Relations 点赞或收藏表
type Relations struct {
	s    *Store
	rows func() map[relationKey]relationRow
}

func (r *Relations) Toggle(_ context.Context, userID, videoID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[userID]; !ok {
		return false, repository.NewForeignKeyViolation("user_id_fkey")
	}
	if _, ok := r.s.videos[videoID]; !ok {
		return false, repository.NewForeignKeyViolation("video_id_fkey")
	}
	return flip(r.rows(), relationKey{subject: userID, object: videoID}, r.s.now()), nil
}

func (r *Relations) ListByVideos(_ context.Context, videoIDs []uuid.UUID) ([]model.VideoRelation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := make(map[uuid.UUID]struct{}, len(videoIDs))
	for _, id := range videoIDs {
		wanted[id] = struct{}{}
	}
	var out []model.VideoRelation
	for key := range r.rows() {
		if _, ok := wanted[key.object]; ok {
			out = append(out, model.VideoRelation{UserID: key.subject, VideoID: key.object})
		}
	}
	return out, nil
}

func (r *Relations) CountByVideo(_ context.Context, videoID uuid.UUID) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for key := range r.rows() {
		if key.object == videoID {
			n++
		}
	}
	return n, nil
}

// Follows 关注表
type Follows struct{ s *Store }

func (f *Follows) Toggle(_ context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	if _, ok := f.s.users[followerID]; !ok {
		return false, repository.NewForeignKeyViolation("follows_follower_id_fkey")
	}
	if _, ok := f.s.users[followeeID]; !ok {
		return false, repository.NewForeignKeyViolation("follows_followee_id_fkey")
	}
	return flip(f.s.follows, relationKey{subject: followerID, object: followeeID}, f.s.now()), nil
}

func (f *Follows) FollowingAmong(_ context.Context, followerID uuid.UUID, candidates []uuid.UUID) ([]uuid.UUID, error) {
	f.s.mu.RLock()
	defer f.s.mu.RUnlock()
	var out []uuid.UUID
	seen := make(map[uuid.UUID]struct{}, len(candidates))
	for _, id := range candidates {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := f.s.follows[relationKey{subject: followerID, object: id}]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (f *Follows) ListFollowingIDs(_ context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	f.s.mu.RLock()
	defer f.s.mu.RUnlock()
	var rows []relationRow
	for key, row := range f.s.follows {
		if key.subject == followerID {
			rows = append(rows, row)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].createdAt.Before(rows[j].createdAt) })
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.key.object)
	}
	return ids, nil
}

// flip 调用方持有写锁
func flip(rows map[relationKey]relationRow, key relationKey, now time.Time) bool {
	if _, ok := rows[key]; ok {
		delete(rows, key)
		return false
	}
	rows[key] = relationRow{key: key, createdAt: now}
	return true
}

// Events 记录发布的事件，Err 非空时发布失败
type Events struct {
	mu     sync.Mutex
	Err    error
	events []kafka.Event
}

func (e *Events) Publish(_ context.Context, event *kafka.Event) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.Err != nil {
		return e.Err
	}
	e.events = append(e.events, *event)
	return nil
}

// Published 已发布事件的副本
func (e *Events) Published() []kafka.Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]kafka.Event(nil), e.events...)
}

// Tokens 内存版 Token 黑名单
type Tokens struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewTokens() *Tokens {
	return &Tokens{revoked: make(map[string]time.Time)}
}

func (t *Tokens) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.revoked[jti] = time.Now().Add(ttl)
	return nil
}

func (t *Tokens) IsRevoked(_ context.Context, jti string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	exp, ok := t.revoked[jti]
	return ok && time.Now().Before(exp), nil
}
