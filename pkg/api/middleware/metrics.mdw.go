package middleware

import (
	"login-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("metrics", m)
		c.Next()
	}
}
