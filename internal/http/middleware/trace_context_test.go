package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/yyoonchul/murmur-blog/internal/platform/ctxutil"
)

func TestAttachTraceContextTagsPostSpan(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	tracer := tp.Tracer("test")

	var td *ctxutil.TraceData
	r := gin.New()
	r.Use(func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), c.FullPath())
		defer span.End()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	r.Use(AttachTraceContext())
	r.GET("/api/posts/:id/comments", func(c *gin.Context) {
		td = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/posts/p1/comments", nil)
	req.Header.Set(headerRequestID, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if td == nil || td.RequestID != "req-1" || td.TraceID == "" {
		t.Fatalf("trace data: got=%+v", td)
	}
	if got := w.Header().Get(headerTraceID); got != td.TraceID {
		t.Fatalf("%s header: want=%s got=%s", headerTraceID, td.TraceID, got)
	}
	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("spans: want=1 got=%d", len(spans))
	}
	if td.TraceID != spans[0].SpanContext().TraceID().String() {
		t.Fatalf("trace id should follow the active span: want=%s got=%s", spans[0].SpanContext().TraceID(), td.TraceID)
	}
	found := false
	for _, kv := range spans[0].Attributes() {
		if kv.Key == attrPostID && kv.Value.AsString() == "p1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("span should carry %s=p1: %v", attrPostID, spans[0].Attributes())
	}
}

func TestAttachTraceContextGeneratesIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Header().Get(headerRequestID) == "" || w.Header().Get(headerTraceID) == "" {
		t.Fatalf("ids should be generated: %v", w.Header())
	}
}
