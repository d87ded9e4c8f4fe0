package elasticsearch

import (
	"bytes"
	"context"
	"fmt"

	"reel-go/pkg/logger"

	"go.uber.org/zap"
)

// VideosIndexMapping 返回 videos 索引的 mapping
func VideosIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0,
			"analysis": {
				"analyzer": {
					"folded_text": {
						"type": "custom",
						"tokenizer": "standard",
						"filter": ["lowercase", "asciifolding"]
					}
				}
			}
		},
		"mappings": {
			"properties": {
				"id": {"type": "keyword"},
				"user_id": {"type": "keyword"},
				"user_name": {"type": "text", "analyzer": "folded_text"},
				"display_name": {"type": "keyword"},
				"title": {
					"type": "text",
					"analyzer": "folded_text",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 50}}
				},
				"description": {"type": "text", "analyzer": "folded_text"},
				"video_url": {"type": "keyword", "index": false},
				"like_count": {"type": "long"},
				"bookmark_count": {"type": "long"},
				"hot_score": {"type": "float"},
				"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"},
				"updated_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
			}
		}
	}`
}

// EnsureIndex 确保索引存在，不存在则创建
func (x *VideoIndex) EnsureIndex(ctx context.Context) error {
	exists, err := IndicesExists(ctx, x.name)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		logger.Info("Elasticsearch videos index already exists", zap.String("index", x.name))
		return nil
	}

	resp, err := IndicesCreate(ctx, x.name, bytes.NewReader([]byte(VideosIndexMapping())))
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch videos index created", zap.String("index", x.name))
	return nil
}
