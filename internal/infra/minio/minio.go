package minio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"reel-go/internal/config"
	"reel-go/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

var client *minio.Client

// Init 初始化 MinIO 客户端，确保视频 Bucket 存在且公开读
func Init(cfg *config.MinIOConfig) error {
	var err error
	client, err = minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info("MinIO bucket created", zap.String("bucket", cfg.Bucket))
	}

	// 视频需要公开读，供前端直接播放
	if err := client.SetBucketPolicy(ctx, cfg.Bucket, PublicReadPolicy(cfg.Bucket)); err != nil {
		return fmt.Errorf("failed to set public policy for %s: %w", cfg.Bucket, err)
	}

	logger.Info("MinIO connected",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.Bucket),
	)

	return nil
}

// Get 获取 MinIO 客户端实例
func Get() *minio.Client {
	return client
}

// PublicReadPolicy 生成 Bucket 公开读策略
func PublicReadPolicy(bucket string) string {
	return fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, bucket)
}

// UploadSigner 为客户端直传生成预签名 PUT 地址
type UploadSigner struct {
	bucket     string
	publicBase string
	expiry     time.Duration
}

// NewUploadSigner 创建签名器，publicBase 未配置时由 endpoint 推导
func NewUploadSigner(cfg *config.MinIOConfig) *UploadSigner {
	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}
	return &UploadSigner{
		bucket:     cfg.Bucket,
		publicBase: base,
		expiry:     cfg.UploadExpiryDuration(),
	}
}

// Expiry 预签名地址有效期
func (s *UploadSigner) Expiry() time.Duration {
	return s.expiry
}

// PublicURL 对象的公开访问地址（需要 Bucket 设置为 public-read）
func (s *UploadSigner) PublicURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBase, s.bucket, objectName)
}

// PresignUpload 生成预签名上传地址
func (s *UploadSigner) PresignUpload(ctx context.Context, objectName string) (string, error) {
	if client == nil {
		return "", errors.New("minio client not initialized")
	}
	u, err := client.PresignedPutObject(ctx, s.bucket, objectName, s.expiry)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned upload url: %w", err)
	}
	return u.String(), nil
}
