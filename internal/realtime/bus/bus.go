package bus

import (
	"context"
	"fmt"
	"sync"

	"github.com/yyoonchul/murmur-blog/internal/realtime"
)

type Bus interface {
	Publish(ctx context.Context, msg realtime.SSEMessage) error
	StartForwarder(ctx context.Context, onMsg func(m realtime.SSEMessage)) error
	Close() error
}

// localBus delivers in-process; used when no Redis is configured.
type localBus struct {
	mu    sync.RWMutex
	onMsg []func(realtime.SSEMessage)
}

func NewLocalBus() Bus { return &localBus{} }

func (b *localBus) Publish(_ context.Context, msg realtime.SSEMessage) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, fn := range b.onMsg {
		fn(msg)
	}
	return nil
}

func (b *localBus) StartForwarder(_ context.Context, onMsg func(m realtime.SSEMessage)) error {
	if onMsg == nil {
		return fmt.Errorf("onMsg callback required")
	}
	b.mu.Lock()
	b.onMsg = append(b.onMsg, onMsg)
	b.mu.Unlock()
	return nil
}

func (b *localBus) Close() error { return nil }
