package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

type RequestObserver interface {
	ObserveHTTPRequest(method, path string, status int, d time.Duration)
}

// Metrics labels requests by route template so path parameters do not
// explode cardinality.
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if observer == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		observer.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
