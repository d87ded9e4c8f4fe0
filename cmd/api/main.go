package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reel-go/internal/api/handler"
	"reel-go/internal/api/middleware"
	"reel-go/internal/api/router"
	"reel-go/internal/api/validation"
	"reel-go/internal/config"
	"reel-go/internal/infra/database"
	infraES "reel-go/internal/infra/elasticsearch"
	infraKafka "reel-go/internal/infra/kafka"
	infraMinio "reel-go/internal/infra/minio"
	infraRedis "reel-go/internal/infra/redis"
	"reel-go/internal/repository"
	"reel-go/internal/service"
	"reel-go/pkg/logger"

	_ "reel-go/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Reel-Go API
// @version 1.0
// @description 短视频信息流 API 服务

// @contact.name API Support

// @host 127.0.0.1:8000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	// 初始化Redis（Token 黑名单）
	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()

	// 初始化MinIO
	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	// 初始化Kafka生产者
	if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
		logger.Fatal("Failed to init kafka producer", zap.Error(err))
	}
	defer infraKafka.CloseProducer()

	// 初始化 Elasticsearch（可选，失败则搜索降级到 DB）
	var searcher service.VideoSearcher
	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
	} else {
		defer infraES.Close()
		videoIndex := infraES.NewVideoIndex(cfg.Elasticsearch.VideosIndex())
		if err := videoIndex.EnsureIndex(context.Background()); err != nil {
			logger.Warn("Elasticsearch index init failed", zap.Error(err))
		}
		searcher = videoIndex
	}

	if err := validation.Register(); err != nil {
		logger.Fatal("Failed to register validators", zap.Error(err))
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())

	// 初始化依赖（Repository -> Service -> Handler）
	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)
	followRepo := repository.NewFollowRepository(db)
	tokenBlacklist := repository.NewTokenBlacklist(infraRedis.Get(), infraRedis.RevokedTokenPrefix())
	publisher := infraKafka.NewEventPublisher(cfg.Kafka.Topic("engagement_events"))

	authService := service.NewAuthService(userRepo, followRepo, tokenBlacklist)
	feedService := service.NewFeedService(videoRepo, likeRepo, bookmarkRepo, followRepo)
	engagementService := service.NewEngagementService(userRepo, videoRepo, likeRepo, bookmarkRepo, followRepo, publisher)
	videoService := service.NewVideoService(videoRepo, publisher)
	mediaService := service.NewMediaService(infraMinio.NewUploadSigner(&cfg.MinIO))
	searchService := service.NewSearchService(videoRepo, searcher)

	handlers := &router.Handlers{
		Auth: handler.NewAuthHandler(authService, handler.CookieOptions{
			Name:   cfg.JWT.CookieName,
			Secure: cfg.App.IsRelease(),
		}),
		User:   handler.NewUserHandler(authService, engagementService),
		Video:  handler.NewVideoHandler(feedService, videoService, engagementService),
		Media:  handler.NewMediaHandler(mediaService),
		Search: handler.NewSearchHandler(searchService),
	}

	authRequired := middleware.AuthRequired(cfg.JWT.CookieName, tokenBlacklist)
	toggleLimiter := middleware.NewKeyedLimiter(cfg.RateLimit.Requests, cfg.RateLimit.WindowDuration(), cfg.RateLimit.Burst)

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, handlers, authRequired, middleware.RateLimit(toggleLimiter))

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("redis", cfg.Redis.Addr()),
		zap.String("minio", cfg.MinIO.Endpoint),
		zap.Bool("search_engine", searcher != nil),
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 监听系统信号，优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	logger.Debug("Health check requested", zap.String("ip", c.ClientIP()))

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}

// rootHandler 根路径处理器
func rootHandler(c *gin.Context) {
	cfg := config.Get()

	logger.Info("Root endpoint accessed", zap.String("ip", c.ClientIP()))

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
		"docs":    fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.App.Port),
	})
}
