package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/yyoonchul/murmur-blog/internal/observability"
	apperrors "github.com/yyoonchul/murmur-blog/internal/pkg/errors"
	"github.com/yyoonchul/murmur-blog/internal/platform/ctxutil"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

// Task runs detached from the request that submitted it.
type Task func(ctx context.Context) error

var ErrClosed = errors.New("dispatcher closed")

type job struct {
	name   string
	fn     Task
	trace  *ctxutil.TraceData
	queued time.Time
}

// Dispatcher is a bounded worker pool for fire-and-forget work.
type Dispatcher struct {
	log     *logger.Logger
	metrics *observability.Metrics

	workers int
	queue   chan job
	wg      sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.RWMutex
	closed  bool
	started bool
}

func NewDispatcher(baseLog *logger.Logger, metrics *observability.Metrics, workers, queueSize int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		log:     baseLog.With("component", "Dispatcher"),
		metrics: metrics,
		workers: workers,
		queue:   make(chan job, queueSize),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true
	d.log.Info("Starting dispatcher", "workers", d.workers, "queue", cap(d.queue))
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.runLoop(i + 1)
	}
}

// Submit enqueues fn without blocking. Trace ids on ctx carry over to the task;
// its deadline and cancellation do not.
func (d *Dispatcher) Submit(ctx context.Context, name string, fn Task) error {
	if fn == nil {
		return fmt.Errorf("%w: nil task", apperrors.ErrInvalidArgument)
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrClosed
	}
	j := job{name: name, fn: fn, queued: time.Now()}
	if ctx != nil {
		if td := ctxutil.GetTraceData(ctx); td != nil {
			cp := *td
			j.trace = &cp
		}
	}
	select {
	case d.queue <- j:
		d.metrics.SetDispatchQueueDepth(len(d.queue))
		return nil
	default:
		d.log.Warn("Dispatch queue full, dropping task", "task", name)
		d.metrics.IncDispatchTask(name, "dropped")
		return fmt.Errorf("%w: dispatch queue full", apperrors.ErrUnavailable)
	}
}

func (d *Dispatcher) runLoop(workerID int) {
	defer d.wg.Done()
	for j := range d.queue {
		d.metrics.SetDispatchQueueDepth(len(d.queue))
		d.run(workerID, j)
	}
}

func (d *Dispatcher) run(workerID int, j job) {
	ctx := d.ctx
	if j.trace != nil {
		ctx = ctxutil.WithTraceData(ctx, j.trace)
	}
	start := time.Now()
	status := "ok"
	defer func() {
		if r := recover(); r != nil {
			status = "panic"
			d.log.Error("Task panic", "worker_id", workerID, "task", j.name, "panic", r)
		}
		d.metrics.IncDispatchTask(j.name, status)
		d.log.Debug("Task finished",
			"worker_id", workerID,
			"task", j.name,
			"status", status,
			"wait_ms", start.Sub(j.queued).Milliseconds(),
			"run_ms", time.Since(start).Milliseconds(),
		)
	}()
	if err := j.fn(ctx); err != nil {
		status = "error"
		d.log.Warn("Task failed", "worker_id", workerID, "task", j.name, "error", err)
	}
}

// Shutdown stops intake and waits for queued and running tasks. When ctx ends
// first, running tasks are cancelled and ctx's error is returned.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	started := d.started
	close(d.queue)
	d.mu.Unlock()

	if !started {
		d.cancel()
		return nil
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		d.cancel()
		d.log.Info("Dispatcher drained")
		return nil
	case <-ctx.Done():
		d.cancel()
		<-done
		return ctx.Err()
	}
}
