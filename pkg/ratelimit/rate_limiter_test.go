package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRateLimitType(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   RateLimitType
	}{
		{http.MethodGet, "/health", RateLimitTypeHealth},
		{http.MethodGet, "/ping", RateLimitTypeHealth},
		{http.MethodPost, "/venues/search", RateLimitTypeSearch},
		{http.MethodGet, "/api/v1/artists/search", RateLimitTypeSearch},
		{http.MethodPost, "/venues/create", RateLimitTypeWrite},
		{http.MethodDelete, "/venues/:id", RateLimitTypeWrite},
		{http.MethodPut, "/api/v1/artists/:id", RateLimitTypeWrite},
		{http.MethodGet, "/venues/:id", RateLimitTypeBrowse},
		{http.MethodGet, "/api/v1/genres", RateLimitTypeBrowse},
		{http.MethodGet, "/", RateLimitTypeBrowse},
		{http.MethodGet, "/swagger/*any", RateLimitTypeDefault},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, getRateLimitType(tt.method, tt.path))
		})
	}
}

func testConfig() *Config {
	return &Config{
		Enabled:         true,
		WindowDuration:  time.Minute,
		DefaultRequests: 60,
		BrowseRequests:  120,
		SearchRequests:  30,
		WriteRequests:   20,
		HealthRequests:  300,
		WhitelistedIPs:  []string{"10.0.0.1"},
	}
}

func TestIsAllowed_WithoutRedis(t *testing.T) {
	limiter := NewRateLimiter(nil, testConfig())

	result, err := limiter.IsAllowed(context.Background(), "192.0.2.1", RateLimitTypeSearch)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 30, result.Limit)
	assert.Equal(t, 30, result.Remaining)
}

func TestIsAllowed_Whitelisted(t *testing.T) {
	limiter := NewRateLimiter(nil, testConfig())
	assert.True(t, limiter.isWhitelisted("10.0.0.1"))
	assert.False(t, limiter.isWhitelisted("10.0.0.2"))

	result, err := limiter.IsAllowed(context.Background(), "10.0.0.1", RateLimitTypeWrite)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 20, result.Limit)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "fyyur:ratelimit:192.0.2.1:browse", Key("192.0.2.1", RateLimitTypeBrowse))
}

func TestMiddleware_SetsHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(NewRateLimiter(nil, testConfig())))
	r.GET("/venues", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/venues", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "120", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "120", w.Header().Get("X-RateLimit-Remaining"))
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, "127.0.0.1:1234", "203.0.113.9"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.7"}, "127.0.0.1:1234", "198.51.100.7"},
		{"remote addr", nil, "192.0.2.5:5555", "192.0.2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(c))
		})
	}
}
