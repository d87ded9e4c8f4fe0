package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"reel-go/internal/model"
	"reel-go/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VideoDoc ES 视频文档
type VideoDoc struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	UserName      string  `json:"user_name"`
	DisplayName   string  `json:"display_name"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	VideoURL      string  `json:"video_url"`
	LikeCount     int64   `json:"like_count"`
	BookmarkCount int64   `json:"bookmark_count"`
	HotScore      float64 `json:"hot_score"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// 收藏比点赞权重更高
func hotScore(likes, bookmarks int64) float64 {
	return float64(likes) + float64(bookmarks)*2.0
}

// NewVideoDoc 由视频（需已加载发布者）和互动计数构建文档
func NewVideoDoc(v *model.Video, likes, bookmarks int64) *VideoDoc {
	desc := ""
	if v.Description != nil {
		desc = *v.Description
	}
	return &VideoDoc{
		ID:            v.ID.String(),
		UserID:        v.UserID.String(),
		UserName:      v.User.Name,
		DisplayName:   v.User.DisplayName,
		Title:         v.Title,
		Description:   desc,
		VideoURL:      v.VideoURL,
		LikeCount:     likes,
		BookmarkCount: bookmarks,
		HotScore:      hotScore(likes, bookmarks),
		CreatedAt:     v.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     v.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// VideoIndex 视频索引的读写入口
type VideoIndex struct {
	name string
}

func NewVideoIndex(name string) *VideoIndex {
	return &VideoIndex{name: name}
}

// Name 索引名
func (x *VideoIndex) Name() string {
	return x.name
}

// IndexVideo 写入或覆盖单个视频文档
func (x *VideoIndex) IndexVideo(ctx context.Context, v *model.Video, likes, bookmarks int64) error {
	body, err := json.Marshal(NewVideoDoc(v, likes, bookmarks))
	if err != nil {
		return err
	}

	resp, err := Index(ctx, x.name, v.ID.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Video synced to ES", zap.String("video_id", v.ID.String()))
	return nil
}

// DeleteVideo 删除视频文档，文档不存在视为成功
func (x *VideoIndex) DeleteVideo(ctx context.Context, videoID uuid.UUID) error {
	resp, err := Delete(ctx, x.name, videoID.String())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}

// BuildBulkBody 构建 bulk index 请求体（NDJSON）
func BuildBulkBody(docs []*VideoDoc) (string, error) {
	var buf strings.Builder
	for _, doc := range docs {
		docBody, err := json.Marshal(doc)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, `{"index":{"_id":%q}}`, doc.ID)
		buf.WriteString("\n")
		buf.Write(docBody)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

// BulkIndex 批量写入文档
func (x *VideoIndex) BulkIndex(ctx context.Context, docs []*VideoDoc) (success, failed int, err error) {
	body, err := BuildBulkBody(docs)
	if err != nil {
		return 0, len(docs), err
	}
	if body == "" {
		return 0, 0, nil
	}

	resp, err := Bulk(ctx, x.name, strings.NewReader(body))
	if err != nil {
		return 0, len(docs), err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return 0, len(docs), fmt.Errorf("bulk failed: %s", resp.String())
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
		Items  []struct {
			Index struct {
				Status int `json:"status"`
			} `json:"index"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&bulkResp); err != nil {
		return len(docs), 0, nil
	}

	for _, item := range bulkResp.Items {
		if item.Index.Status >= 200 && item.Index.Status < 300 {
			success++
		} else {
			failed++
		}
	}

	logger.Info("Bulk sync to ES completed", zap.Int("success", success), zap.Int("failed", failed))
	return success, failed, nil
}

// SearchHits 搜索命中的视频 ID（按相关度排序）
type SearchHits struct {
	IDs        []uuid.UUID
	Highlights map[uuid.UUID]map[string][]string
	Total      int64
}

// BuildSearchQuery 构建关键词搜索 DSL
func BuildSearchQuery(keyword string, from, size int) map[string]interface{} {
	q := strings.TrimSpace(keyword)
	match := map[string]interface{}{
		"query":    q,
		"fields":   []string{"title^3", "description^1", "user_name^1"},
		"type":     "best_fields",
		"operator": "or",
	}
	// 短关键词不要求最小匹配比例
	if len([]rune(q)) > 2 {
		match["minimum_should_match"] = "50%"
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []interface{}{
					map[string]interface{}{"multi_match": match},
				},
			},
		},
		"_source": []string{"id"},
		"from":    from,
		"size":    size,
		"sort": []interface{}{
			map[string]interface{}{"_score": map[string]string{"order": "desc"}},
			map[string]interface{}{"hot_score": map[string]string{"order": "desc"}},
			map[string]interface{}{"created_at": map[string]string{"order": "desc"}},
		},
		"highlight": map[string]interface{}{
			"fields": map[string]interface{}{
				"title":       map[string]interface{}{},
				"description": map[string]interface{}{},
			},
			"pre_tags":  []string{"<em>"},
			"post_tags": []string{"</em>"},
		},
	}
}

// SearchVideoIDs 关键词搜索，只返回命中的 ID，详情由数据库补全
func (x *VideoIndex) SearchVideoIDs(ctx context.Context, keyword string, from, size int) (*SearchHits, error) {
	queryJSON, err := json.Marshal(BuildSearchQuery(keyword, from, size))
	if err != nil {
		return nil, err
	}

	resp, err := Search(ctx, x.name, bytes.NewReader(queryJSON))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("ES search error: %s", resp.String())
	}

	return decodeSearchHits(resp.Body)
}

func decodeSearchHits(body io.Reader) (*SearchHits, error) {
	var esResp struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source struct {
					ID string `json:"id"`
				} `json:"_source"`
				Highlight map[string][]string `json:"highlight"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(body).Decode(&esResp); err != nil {
		return nil, err
	}

	hits := &SearchHits{
		IDs:        make([]uuid.UUID, 0, len(esResp.Hits.Hits)),
		Highlights: make(map[uuid.UUID]map[string][]string),
		Total:      esResp.Hits.Total.Value,
	}
	for _, h := range esResp.Hits.Hits {
		id, err := uuid.Parse(h.Source.ID)
		if err != nil {
			continue
		}
		hits.IDs = append(hits.IDs, id)
		if len(h.Highlight) > 0 {
			hits.Highlights[id] = h.Highlight
		}
	}
	return hits, nil
}
