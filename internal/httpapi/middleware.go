package httpapi

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Spok95/online-catalogue/internal/ctxutil"
	"github.com/Spok95/online-catalogue/internal/logging"
	"github.com/Spok95/online-catalogue/internal/metrics"
)

const headerRequestID = "X-Request-ID"

// RequestID keeps a caller supplied X-Request-ID or makes a new one, echoes
// it back and puts it into the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(headerRequestID, id)
		c.Request = c.Request.WithContext(ctxutil.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// AccessLog logs every request once it is served and counts it per route.
func AccessLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()

		l := logging.FromContext(c.Request.Context(), log)
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("elapsed", time.Since(start)),
		}
		if status >= 500 {
			l.Warn("request", fields...)
			return
		}
		l.Info("request", fields...)
	}
}
