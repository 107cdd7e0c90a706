package middleware

import (
	"strconv"
	"time"

	"jobboard_backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware считает запросы и длительность по шаблону маршрута,
// а не по сырому пути (иначе кардинальность взорвется на id)
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
