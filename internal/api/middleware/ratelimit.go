package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/tahmid-dev/formbuilder-go/internal/ratelimit"
	"github.com/tahmid-dev/formbuilder-go/pkg/response"
)

// RateLimit rejects clients that exceed the per-IP window with 429 and
// exposes the remaining quota on every response. Health and test
// routes bypass counting outside production; that is a development
// convenience, not a security control.
func RateLimit(limiter *ratelimit.Limiter, devBypass bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if devBypass && bypassPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		result, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.WithError(err).Warn("rate limit store unavailable, allowing request")
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retryAfter := int(result.ResetAt.Unix() - nowUnix())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			response.Error(c, http.StatusTooManyRequests, "Too many requests, please slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}

var nowUnix = func() int64 { return time.Now().Unix() }

func bypassPath(path string) bool {
	return path == "/api/health" || strings.HasPrefix(path, "/api/test")
}
