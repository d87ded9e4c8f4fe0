package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reel-go/internal/api/response"
	"reel-go/internal/config"
	"reel-go/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeRevoker struct {
	revoked map[string]bool
	err     error
}

func (f fakeRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	return f.revoked[jti], f.err
}

func setupJWT() {
	config.Set(&config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpireHours: 1}})
}

func protectedEngine(revoker RevocationChecker) *gin.Engine {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/me", AuthRequired("auth_token", revoker), func(c *gin.Context) {
		id, ok := GetCurrentUserID(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		claims, _ := GetCurrentClaims(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "email": claims.Email})
	})
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestAuthRequired(t *testing.T) {
	setupJWT()
	userID := uuid.New()
	token, claims, err := utils.GenerateToken(userID, "a@example.com")
	require.NoError(t, err)

	tests := []struct {
		name    string
		prepare func(*http.Request)
		revoker RevocationChecker
		status  int
	}{
		{"missing", func(*http.Request) {}, nil, http.StatusUnauthorized},
		{"malformed header", func(r *http.Request) { r.Header.Set("Authorization", "Token "+token) }, nil, http.StatusUnauthorized},
		{"garbage token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc") }, nil, http.StatusUnauthorized},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, nil, http.StatusOK},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "auth_token", Value: token}) }, nil, http.StatusOK},
		{"revoked", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			fakeRevoker{revoked: map[string]bool{claims.ID: true}}, http.StatusUnauthorized},
		{"revocation store down", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			fakeRevoker{err: errors.New("redis down")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.prepare(req)
			w := httptest.NewRecorder()
			protectedEngine(tt.revoker).ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, userID.String(), body["id"])
				assert.Equal(t, "a@example.com", body["email"])
			} else {
				assert.Equal(t, tt.status, decodeError(t, w).Code)
			}
		})
	}
}

func TestKeyedLimiter(t *testing.T) {
	l := NewKeyedLimiter(1, time.Hour, 2)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"), "keys are independent")

	now = now.Add(time.Hour)
	assert.True(t, l.Allow("a"))
}

func TestKeyedLimiterEvictsIdleKeys(t *testing.T) {
	l := NewKeyedLimiter(10, time.Second, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("idle")
	now = now.Add(l.ttl + time.Second)
	l.Allow("fresh")

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.visitors, "idle")
	assert.Contains(t, l.visitors, "fresh")
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.POST("/like", RateLimit(NewKeyedLimiter(1, time.Hour, 1)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/like", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/like", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "TooManyRequests", decodeError(t, w).Type)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Logger(), Recovery())
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "InternalServerError", decodeError(t, w).Type)
}
