package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/taskmgmt/task-management-api/internal/httputil"
)

// Recovery converts panics into the standard 500 envelope. The real cause is
// logged server-side and never reaches the client.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, err any) {
		log.Error().
			Interface("panic", err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("unhandled error")

		httputil.InternalError(c)
		c.Abort()
	})
}
