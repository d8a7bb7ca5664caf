package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/tahmid-dev/formbuilder-go/pkg/response"
)

// Recovery converts panics from inner stages into a structured 500.
// Internal detail only surfaces when debug detail is enabled.
func Recovery(showDetail bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(log.Fields{
					"method": c.Request.Method,
					"path":   c.Request.URL.Path,
					"panic":  fmt.Sprint(r),
				}).Error(string(debug.Stack()))

				msg := "Internal server error"
				if showDetail {
					msg = fmt.Sprintf("Internal server error: %v", r)
				}
				response.ServerError(c, msg)
				c.Abort()
			}
		}()
		c.Next()
	}
}
