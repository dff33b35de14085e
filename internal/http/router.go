package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yyoonchul/murmur-blog/internal/http/handlers"
	httpMW "github.com/yyoonchul/murmur-blog/internal/http/middleware"
	"github.com/yyoonchul/murmur-blog/internal/http/response"
	"github.com/yyoonchul/murmur-blog/internal/observability"
	"github.com/yyoonchul/murmur-blog/internal/platform/apierr"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

var errRouteNotFound = errors.New("route not found")

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string

	// RestrictLocal limits the settings and persona routes to loopback peers.
	RestrictLocal bool

	HealthHandler   *httpH.HealthHandler
	PostHandler     *httpH.PostHandler
	CommentHandler  *httpH.CommentHandler
	PersonaHandler  *httpH.PersonaHandler
	SettingsHandler *httpH.SettingsHandler
	RealtimeHandler *httpH.RealtimeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.CORS())
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.RequestLogger(cfg.Log))

	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Health
		if cfg.HealthHandler != nil {
			api.GET("/health", cfg.HealthHandler.HealthCheck)
		}

		// Posts
		if cfg.PostHandler != nil {
			api.GET("/posts", cfg.PostHandler.List)
			api.POST("/posts", cfg.PostHandler.Create)
			api.GET("/posts/:id", cfg.PostHandler.Get)
			api.PUT("/posts/:id", cfg.PostHandler.Update)
			api.DELETE("/posts/:id", cfg.PostHandler.Delete)
			api.POST("/posts/:id/generate", cfg.PostHandler.Generate)
		}

		// Comments
		if cfg.CommentHandler != nil {
			api.GET("/posts/:id/comments", cfg.CommentHandler.List)
			api.POST("/posts/:id/comments", cfg.CommentHandler.Create)
			api.DELETE("/posts/:id/comments/:commentId", cfg.CommentHandler.Delete)
		}

		// Realtime (SSE)
		if cfg.RealtimeHandler != nil {
			api.GET("/posts/:id/stream", cfg.RealtimeHandler.PostStream)
		}
	}

	local := api.Group("/")
	local.Use(httpMW.LocalOnly(cfg.RestrictLocal))
	{
		if cfg.PersonaHandler != nil {
			local.GET("/personas", cfg.PersonaHandler.Get)
			local.PUT("/personas", cfg.PersonaHandler.Put)
		}
		if cfg.SettingsHandler != nil {
			local.GET("/settings", cfg.SettingsHandler.Get)
			local.PUT("/settings", cfg.SettingsHandler.Put)
			local.GET("/models", cfg.SettingsHandler.Models)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.RespondError(c, http.StatusNotFound, apierr.CodeNotFound, errRouteNotFound)
	})

	return r
}
