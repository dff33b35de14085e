package app

import (
	"github.com/yyoonchul/murmur-blog/internal/http"
	httpH "github.com/yyoonchul/murmur-blog/internal/http/handlers"
	"github.com/yyoonchul/murmur-blog/internal/observability"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
	"github.com/yyoonchul/murmur-blog/internal/realtime"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Post     *httpH.PostHandler
	Comment  *httpH.CommentHandler
	Persona  *httpH.PersonaHandler
	Settings *httpH.SettingsHandler
	Realtime *httpH.RealtimeHandler
}

func wireHandlers(log *logger.Logger, svc Services, hub *realtime.SSEHub, metrics *observability.Metrics) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Post:     httpH.NewPostHandler(log, svc.Post),
		Comment:  httpH.NewCommentHandler(log, svc.Comment),
		Persona:  httpH.NewPersonaHandler(svc.Persona),
		Settings: httpH.NewSettingsHandler(svc.Settings),
		Realtime: httpH.NewRealtimeHandler(log, hub, metrics),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics, tracing bool) *http.Server {
	rc := http.RouterConfig{
		Log:             log,
		Metrics:         metrics,
		RestrictLocal:   cfg.RestrictSettings(),
		HealthHandler:   handlers.Health,
		PostHandler:     handlers.Post,
		CommentHandler:  handlers.Comment,
		PersonaHandler:  handlers.Persona,
		SettingsHandler: handlers.Settings,
		RealtimeHandler: handlers.Realtime,
	}
	if tracing {
		rc.ServiceName = serviceName
	}
	return http.NewServer(rc)
}
