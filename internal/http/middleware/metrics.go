package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yyoonchul/murmur-blog/internal/observability"
)

const unmatchedRoute = "unmatched"

// Metrics records API request counts and latency. SSE streams are left to the
// stream client gauge; their duration is the lifetime of the connection.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		route := c.FullPath()
		if isStreamRoute(route) {
			c.Next()
			return
		}
		start := time.Now()
		m.ApiInflightInc()
		defer m.ApiInflightDec()

		c.Next()

		// Unmatched paths share one label to keep cardinality bounded.
		if route == "" {
			route = unmatchedRoute
		}
		m.ObserveAPI(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

func isStreamRoute(route string) bool {
	return strings.HasSuffix(route, "/stream")
}
