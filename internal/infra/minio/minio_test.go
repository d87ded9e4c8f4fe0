package minio

import (
	"encoding/json"
	"testing"
	"time"

	"reel-go/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicReadPolicy(t *testing.T) {
	var policy struct {
		Statement []struct {
			Action   []string `json:"Action"`
			Resource []string `json:"Resource"`
		} `json:"Statement"`
	}
	require.NoError(t, json.Unmarshal([]byte(PublicReadPolicy("public-videos")), &policy))
	require.Len(t, policy.Statement, 1)
	assert.Equal(t, []string{"s3:GetObject"}, policy.Statement[0].Action)
	assert.Equal(t, []string{"arn:aws:s3:::public-videos/*"}, policy.Statement[0].Resource)
}

func TestUploadSignerPublicURL(t *testing.T) {
	s := NewUploadSigner(&config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "public-videos"})
	assert.Equal(t, "http://localhost:9000/public-videos/u/a.mp4", s.PublicURL("u/a.mp4"))
	assert.Equal(t, 15*time.Minute, s.Expiry())

	s = NewUploadSigner(&config.MinIOConfig{
		Endpoint:      "minio:9000",
		PublicBaseURL: "https://cdn.example.com/",
		Bucket:        "v",
		UseSSL:        true,
		UploadExpiry:  60,
	})
	assert.Equal(t, "https://cdn.example.com/v/a.mp4", s.PublicURL("a.mp4"))
	assert.Equal(t, time.Minute, s.Expiry())
}

func TestPresignUploadWithoutClient(t *testing.T) {
	s := NewUploadSigner(&config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "v"})
	_, err := s.PresignUpload(t.Context(), "a.mp4")
	assert.Error(t, err)
}
