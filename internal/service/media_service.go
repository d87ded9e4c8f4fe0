package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"reel-go/internal/api/dto"

	"github.com/google/uuid"
)

var allowedVideoExts = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".m4v":  "video/x-m4v",
}

// MediaService 签发对象存储直传地址，服务端不经手视频文件
type MediaService struct {
	signer UploadSigner
}

func NewMediaService(signer UploadSigner) *MediaService {
	return &MediaService{signer: signer}
}

// CreateUploadURL 为当前用户生成一次性直传地址
func (s *MediaService) CreateUploadURL(ctx context.Context, userID uuid.UUID, req *dto.UploadURLRequest) (*dto.UploadURLData, error) {
	ext := strings.ToLower(path.Ext(strings.TrimSpace(req.FileName)))
	contentType, ok := allowedVideoExts[ext]
	if !ok {
		return nil, NewValidationError("file_name", "仅支持 mp4、mov、webm、m4v 格式的视频")
	}

	objectName := fmt.Sprintf("videos/%s/%s%s", userID, uuid.New(), ext)
	uploadURL, err := s.signer.PresignUpload(ctx, objectName)
	if err != nil {
		return nil, err
	}

	return &dto.UploadURLData{
		UploadURL:   uploadURL,
		VideoURL:    s.signer.PublicURL(objectName),
		ObjectName:  objectName,
		ContentType: contentType,
		ExpiresIn:   int(s.signer.Expiry().Seconds()),
	}, nil
}
