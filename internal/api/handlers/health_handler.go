package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tahmid-dev/formbuilder-go/pkg/response"
)

type HealthHandler struct {
	startedAt time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startedAt).String(),
	}, "Service healthy")
}

// TestCORS exists so a browser client can verify its origin is allowed.
func (h *HealthHandler) TestCORS(c *gin.Context) {
	response.Success(c, gin.H{
		"origin": c.GetHeader("Origin"),
	}, "CORS check")
}

// RateLimitStatus echoes the quota headers set by the limiter.
func (h *HealthHandler) RateLimitStatus(c *gin.Context) {
	response.Success(c, gin.H{
		"limit":     c.Writer.Header().Get("X-RateLimit-Limit"),
		"remaining": c.Writer.Header().Get("X-RateLimit-Remaining"),
		"reset":     c.Writer.Header().Get("X-RateLimit-Reset"),
	}, "Rate limit status")
}
