package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yyoonchul/murmur-blog/internal/observability"
)

func TestMetricsLabelsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := observability.NewMetrics()
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/api/posts/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/posts/:id/stream", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/posts/p1", "/api/posts/p2", "/api/posts/p1/stream", "/nope/p1"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	if !strings.Contains(body, `murmur_api_requests_total{method="GET",route="/api/posts/:id",status="200"} 2`) {
		t.Fatalf("post route should be counted by template:\n%s", body)
	}
	if !strings.Contains(body, `murmur_api_requests_total{method="GET",route="unmatched",status="404"} 1`) {
		t.Fatalf("unmatched path should share one label:\n%s", body)
	}
	if strings.Contains(body, `route="/api/posts/:id/stream"`) {
		t.Fatalf("stream route should not be observed:\n%s", body)
	}
	if strings.Contains(body, "/nope/p1") {
		t.Fatalf("raw paths must not become labels")
	}
	if !strings.Contains(body, "murmur_api_inflight_requests 0") {
		t.Fatalf("inflight gauge should settle at 0:\n%s", body)
	}
}

func TestMetricsNilIsPassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics(nil))
	r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d", rec.Code)
	}
}
