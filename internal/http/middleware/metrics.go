package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/mindpulse-backend/internal/observability"
)

// Probe and scrape routes are not counted.
var unmeteredRoutes = map[string]bool{
	"/healthcheck": true,
	"/readyz":      true,
	"/metrics":     true,
}

// Metrics records per-route request counts and latency. Unmatched paths share one "unmatched"
// label so random URLs cannot grow the series set.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil || unmeteredRoutes[c.FullPath()] {
			c.Next()
			return
		}
		m.ApiInflightInc()
		defer m.ApiInflightDec()
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveAPI(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
