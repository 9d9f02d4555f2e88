package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/bhojanbuddy/backend/internal/middleware"
)

func TestRateLimiterFailsOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Unreachable Redis: the limiter must let traffic through.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	limiter := middleware.NewLoginRateLimiter(client)

	router := gin.New()
	router.GET("/limited", limiter.ByClientIP(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "rate limit check failed", resp.Header().Get("X-RateLimit-Error"))
}
