package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"reel-go/internal/config"
	"reel-go/internal/infra/database"
	infraES "reel-go/internal/infra/elasticsearch"
	infraKafka "reel-go/internal/infra/kafka"
	"reel-go/internal/repository"
	"reel-go/internal/service"
	"reel-go/pkg/logger"

	"go.uber.org/zap"
)

// 搜索索引同步 worker：消费视频与互动事件，维护 Elasticsearch 中的视频文档
func main() {
	configPath := flag.String("config", "configs/config.yaml", "config file path")
	reindex := flag.Bool("reindex", false, "rebuild the whole video index and exit")
	batchSize := flag.Int("batch", 200, "reindex batch size")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	videoIndex := infraES.NewVideoIndex(cfg.Elasticsearch.VideosIndex())
	if err := videoIndex.EnsureIndex(ctx); err != nil {
		logger.Fatal("Failed to ensure video index", zap.Error(err))
	}

	db := database.Get()
	indexService := service.NewIndexService(
		repository.NewVideoRepository(db),
		repository.NewLikeRepository(db),
		repository.NewBookmarkRepository(db),
		videoIndex,
	)

	if *reindex {
		indexed, err := indexService.Reindex(ctx, *batchSize)
		if err != nil {
			logger.Fatal("Reindex failed", zap.Int("indexed", indexed), zap.Error(err))
		}
		return
	}

	topic := cfg.Kafka.Topic("engagement_events")
	groupID := cfg.Kafka.GroupID
	if groupID == "" {
		groupID = "reel-go-search-indexer"
	}

	logger.Info("Index worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	infraKafka.StartEventConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, indexService.HandleEvent)
}
