package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yyoonchul/murmur-blog/internal/observability"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
	"github.com/yyoonchul/murmur-blog/internal/realtime"
)

type RealtimeHandler struct {
	log     *logger.Logger
	hub     *realtime.SSEHub
	metrics *observability.Metrics
}

func NewRealtimeHandler(log *logger.Logger, hub *realtime.SSEHub, metrics *observability.Metrics) *RealtimeHandler {
	return &RealtimeHandler{
		log:     log.With("handler", "RealtimeHandler"),
		hub:     hub,
		metrics: metrics,
	}
}

// GET /api/posts/:id/stream
func (h *RealtimeHandler) PostStream(c *gin.Context) {
	postID := c.Param("id")
	client := h.hub.NewSSEClient()
	h.hub.AddChannel(client, realtime.PostChannel(postID))
	h.log.Info("SSE stream open", "post_id", postID, "client_id", client.ID.String())

	h.metrics.StreamClientsInc()
	defer h.metrics.StreamClientsDec()

	h.hub.ServeHTTP(c.Writer, c.Request, client)

	h.hub.CloseClient(client)
	h.log.Info("SSE stream closed", "post_id", postID, "client_id", client.ID.String())
}
