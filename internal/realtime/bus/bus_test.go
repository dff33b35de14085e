package bus

import (
	"context"
	"testing"

	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
	"github.com/yyoonchul/murmur-blog/internal/realtime"
)

func TestLocalBusForwardsToEverySubscriber(t *testing.T) {
	b := NewLocalBus()
	var got []realtime.SSEEvent
	for i := 0; i < 2; i++ {
		if err := b.StartForwarder(context.Background(), func(m realtime.SSEMessage) { got = append(got, m.Event) }); err != nil {
			t.Fatalf("StartForwarder: %v", err)
		}
	}
	if err := b.Publish(context.Background(), realtime.SSEMessage{Channel: "post:p1", Event: realtime.SSEEventCommentCreated}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("deliveries: want=2 got=%d", len(got))
	}
	if err := b.StartForwarder(context.Background(), nil); err == nil {
		t.Fatalf("nil callback should be rejected")
	}
}

func TestNewRedisBusValidates(t *testing.T) {
	if _, err := NewRedisBus(logger.NewNop(), nil, ""); err == nil {
		t.Fatalf("nil client should be rejected")
	}
	if _, err := NewRedisClient(RedisConfig{}); err == nil {
		t.Fatalf("empty addr should be rejected")
	}
}
