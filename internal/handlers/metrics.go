package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantagecare/practice-backend/internal/observability"
)

// MetricsHandler serves the process metrics in Prometheus text format.
func MetricsHandler(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		if err := metrics.WritePrometheus(c.Writer); err != nil {
			c.Status(http.StatusInternalServerError)
		}
	}
}
