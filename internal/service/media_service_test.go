package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"reel-go/internal/api/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSigner struct {
	err error
}

func (s fakeSigner) PresignUpload(_ context.Context, objectName string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "https://minio.local/bucket/" + objectName + "?X-Amz-Signature=abc", nil
}

func (fakeSigner) PublicURL(objectName string) string {
	return "https://cdn.local/bucket/" + objectName
}

func (fakeSigner) Expiry() time.Duration { return 15 * time.Minute }

func TestCreateUploadURL(t *testing.T) {
	svc := NewMediaService(fakeSigner{})
	userID := uuid.New()

	data, err := svc.CreateUploadURL(context.Background(), userID, &dto.UploadURLRequest{FileName: "Holiday.MP4"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(data.ObjectName, "videos/"+userID.String()+"/"))
	assert.True(t, strings.HasSuffix(data.ObjectName, ".mp4"))
	assert.Equal(t, "https://cdn.local/bucket/"+data.ObjectName, data.VideoURL)
	assert.Contains(t, data.UploadURL, "X-Amz-Signature")
	assert.Equal(t, "video/mp4", data.ContentType)
	assert.Equal(t, 900, data.ExpiresIn)
}

func TestCreateUploadURLRejectsExtension(t *testing.T) {
	svc := NewMediaService(fakeSigner{})

	for _, name := range []string{"script.sh", "noext", "movie.mp4.exe"} {
		_, err := svc.CreateUploadURL(context.Background(), uuid.New(), &dto.UploadURLRequest{FileName: name})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, name)
		assert.Equal(t, "file_name", verr.Field)
	}
}

func TestCreateUploadURLSignerError(t *testing.T) {
	svc := NewMediaService(fakeSigner{err: errors.New("minio down")})
	_, err := svc.CreateUploadURL(context.Background(), uuid.New(), &dto.UploadURLRequest{FileName: "a.webm"})
	assert.EqualError(t, err, "minio down")
}
