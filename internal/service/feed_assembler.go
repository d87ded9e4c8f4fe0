package service

import (
	"reel-go/internal/api/dto"
	"reel-go/internal/model"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type feedEntry struct {
	video        *model.Video
	likes        int
	bookmarks    int
	isLiked      bool
	isBookmarked bool
}

// assembleFeed 按窗口顺序分组聚合；窗口之后被删除的视频没有详情，直接跳过
func assembleFeed(requesterID uuid.UUID, window []model.VideoCursor, h *feedHydration) []dto.FeedItem {
	entries := orderedmap.New[uuid.UUID, *feedEntry](orderedmap.WithCapacity[uuid.UUID, *feedEntry](len(window)))
	for _, w := range window {
		entries.Set(w.ID, &feedEntry{})
	}

	for i := range h.videos {
		if e, ok := entries.Get(h.videos[i].ID); ok {
			e.video = &h.videos[i]
		}
	}
	for _, l := range h.likes {
		if e, ok := entries.Get(l.VideoID); ok {
			e.likes++
			if l.UserID == requesterID {
				e.isLiked = true
			}
		}
	}
	for _, b := range h.bookmarks {
		if e, ok := entries.Get(b.VideoID); ok {
			e.bookmarks++
			if b.UserID == requesterID {
				e.isBookmarked = true
			}
		}
	}

	following := make(map[uuid.UUID]struct{}, len(h.following))
	for _, id := range h.following {
		following[id] = struct{}{}
	}

	items := make([]dto.FeedItem, 0, entries.Len())
	for pair := entries.Oldest(); pair != nil; pair = pair.Next() {
		e := pair.Value
		if e.video == nil {
			continue
		}
		_, isFollowing := following[e.video.UserID]
		items = append(items, toFeedItem(e, isFollowing))
	}
	return items
}

func toFeedItem(e *feedEntry, isFollowing bool) dto.FeedItem {
	v := e.video
	desc := ""
	if v.Description != nil {
		desc = *v.Description
	}
	return dto.FeedItem{
		ID:    v.ID,
		Title: v.Title,
		User: dto.FeedUser{
			ID:          v.User.ID,
			Name:        v.User.Name,
			DisplayName: v.User.DisplayName,
		},
		Description:  desc,
		Stats:        dto.FeedStats{Likes: e.likes, Bookmarks: e.bookmarks},
		IsLiked:      e.isLiked,
		IsBookmarked: e.isBookmarked,
		IsFollowing:  isFollowing,
		VideoURL:     v.VideoURL,
		CreatedAt:    v.CreatedAt.UTC(),
	}
}
