package middleware

import (
	"strconv"

	"tourguide/metrics"

	"github.com/gin-gonic/gin"
)

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}

// MetricsMiddleware counts requests by route template and status class.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.IncHTTP(route, statusClass(c.Writer.Status()))
	}
}
