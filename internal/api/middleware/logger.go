// internal/api/middleware/logger.go
package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Logger is a middleware that logs the request details
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Str("ip", c.ClientIP()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("Request processed")
	}
}

// Recovery recovers from panics and logs the error
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Interface("error", err).
					Str("path", c.Request.URL.Path).
					Msg("Recovered from panic")
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

const repIDKey = "rep_id"

// RepScope requires the X-Rep-ID header on every request. Authentication
// itself lives upstream; by the time a request lands here the rep scope is
// already trusted.
func RepScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		repID := c.GetHeader("X-Rep-ID")
		if repID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "X-Rep-ID header is required"})
			return
		}
		c.Set(repIDKey, repID)
		c.Next()
	}
}

// RepID returns the rep scope set by RepScope.
func RepID(c *gin.Context) string {
	return c.GetString(repIDKey)
}
