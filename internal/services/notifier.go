package services

import (
	"context"

	types "github.com/yyoonchul/murmur-blog/internal/domain"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
	"github.com/yyoonchul/murmur-blog/internal/realtime"
	"github.com/yyoonchul/murmur-blog/internal/realtime/bus"
)

// SSEEmitter delivers a realtime message to subscribers.
type SSEEmitter interface {
	Emit(ctx context.Context, msg realtime.SSEMessage)
}

// BusEmitter publishes through a bus whose forwarder feeds the hub.
type BusEmitter struct {
	Bus bus.Bus
	Log *logger.Logger
}

func (e *BusEmitter) Emit(ctx context.Context, msg realtime.SSEMessage) {
	if err := e.Bus.Publish(ctx, msg); err != nil && e.Log != nil {
		e.Log.Warn("publish realtime message failed", "channel", msg.Channel, "event", msg.Event, "error", err)
	}
}

type PostNotifier interface {
	CommentCreated(ctx context.Context, postID string, c types.Comment)
	CommentsDeleted(ctx context.Context, postID string, ids []string)
	GenerationStarted(ctx context.Context, postID, kind string)
	GenerationFinished(ctx context.Context, postID, kind string, created int)
}

type postNotifier struct {
	emit SSEEmitter
}

func NewPostNotifier(emit SSEEmitter) PostNotifier {
	return &postNotifier{emit: emit}
}

func (n *postNotifier) send(ctx context.Context, postID string, event realtime.SSEEvent, data any) {
	if n == nil || n.emit == nil {
		return
	}
	n.emit.Emit(ctx, realtime.SSEMessage{Channel: realtime.PostChannel(postID), Event: event, Data: data})
}

func (n *postNotifier) CommentCreated(ctx context.Context, postID string, c types.Comment) {
	n.send(ctx, postID, realtime.SSEEventCommentCreated, c)
}

func (n *postNotifier) CommentsDeleted(ctx context.Context, postID string, ids []string) {
	n.send(ctx, postID, realtime.SSEEventCommentDeleted, map[string]any{"ids": ids})
}

func (n *postNotifier) GenerationStarted(ctx context.Context, postID, kind string) {
	n.send(ctx, postID, realtime.SSEEventGenerationStarted, map[string]any{"kind": kind})
}

func (n *postNotifier) GenerationFinished(ctx context.Context, postID, kind string, created int) {
	n.send(ctx, postID, realtime.SSEEventGenerationFinished, map[string]any{"kind": kind, "created": created})
}

type nopNotifier struct{}

func (nopNotifier) CommentCreated(context.Context, string, types.Comment)  {}
func (nopNotifier) CommentsDeleted(context.Context, string, []string)      {}
func (nopNotifier) GenerationStarted(context.Context, string, string)      {}
func (nopNotifier) GenerationFinished(context.Context, string, string, int) {}

// NopNotifier discards every event.
var NopNotifier PostNotifier = nopNotifier{}
