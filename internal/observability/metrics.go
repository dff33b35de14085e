package observability

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/yyoonchul/murmur-blog/internal/platform/envutil"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	llmRequests *prometheus.CounterVec
	llmLatency  *prometheus.HistogramVec

	commentsGenerated *prometheus.CounterVec
	dispatchQueue     prometheus.Gauge
	dispatchTasks     *prometheus.CounterVec
	streamClients     prometheus.Gauge

	redisUp   prometheus.Gauge
	redisPing prometheus.Gauge
}

var (
	initOnce sync.Once
	instance *Metrics
)

func Enabled() bool {
	return envutil.Bool("METRICS_ENABLED", false)
}

func Current() *Metrics {
	return instance
}

// Init builds the process-wide metrics set. Returns nil when METRICS_ENABLED is off;
// every method is nil-safe.
func Init(log *logger.Logger) *Metrics {
	if !Enabled() {
		return nil
	}
	initOnce.Do(func() {
		instance = NewMetrics()
		if log != nil {
			log.Info("metrics enabled")
		}
	})
	return instance
}

// NewMetrics returns an independent metrics set on its own registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "murmur_api_requests_total",
			Help: "Total API requests by method/route/status.",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "murmur_api_request_duration_seconds",
			Help:    "API request latency in seconds by method/route/status.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"method", "route", "status"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "murmur_api_inflight_requests",
			Help: "In-flight API requests.",
		}),
		llmRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "murmur_llm_requests_total",
			Help: "Language-model calls by provider/model/status.",
		}, []string{"provider", "model", "status"}),
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "murmur_llm_request_duration_seconds",
			Help:    "Language-model call latency in seconds.",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60, 120},
		}, []string{"provider", "model", "status"}),
		commentsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "murmur_comments_generated_total",
			Help: "Persona comments generated by persona/kind/status.",
		}, []string{"persona", "kind", "status"}),
		dispatchQueue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "murmur_dispatch_queue_depth",
			Help: "Background generation tasks waiting to run.",
		}),
		dispatchTasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "murmur_dispatch_tasks_total",
			Help: "Background tasks by name/status.",
		}, []string{"task", "status"}),
		streamClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "murmur_stream_clients",
			Help: "Connected SSE clients.",
		}),
		redisUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "murmur_redis_up",
			Help: "1 when the last redis ping succeeded.",
		}),
		redisPing: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "murmur_redis_ping_seconds",
			Help: "Last redis ping latency in seconds.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.apiRequests, m.apiLatency, m.apiInflight,
		m.llmRequests, m.llmLatency,
		m.commentsGenerated, m.dispatchQueue, m.dispatchTasks, m.streamClients,
		m.redisUp, m.redisPing,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Gatherer exposes the registry for tests and custom exporters.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	if m == nil {
		return prometheus.NewRegistry()
	}
	return m.registry
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route, status).Observe(dur.Seconds())
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) ObserveLLMRequest(provider, model, status string, dur time.Duration) {
	if m == nil {
		return
	}
	provider = orUnknown(provider)
	model = orUnknown(model)
	status = orUnknown(status)
	m.llmRequests.WithLabelValues(provider, model, status).Inc()
	if dur > 0 {
		m.llmLatency.WithLabelValues(provider, model, status).Observe(dur.Seconds())
	}
}

func (m *Metrics) IncCommentGenerated(personaID, kind, status string) {
	if m == nil {
		return
	}
	m.commentsGenerated.WithLabelValues(orUnknown(personaID), orUnknown(kind), orUnknown(status)).Inc()
}

func (m *Metrics) SetDispatchQueueDepth(n int) {
	if m == nil {
		return
	}
	m.dispatchQueue.Set(float64(n))
}

func (m *Metrics) IncDispatchTask(task, status string) {
	if m == nil {
		return
	}
	m.dispatchTasks.WithLabelValues(orUnknown(task), orUnknown(status)).Inc()
}

func (m *Metrics) StreamClientsInc() {
	if m == nil {
		return
	}
	m.streamClients.Inc()
}

func (m *Metrics) StreamClientsDec() {
	if m == nil {
		return
	}
	m.streamClients.Dec()
}

func (m *Metrics) StartRedisCollector(ctx context.Context, log *logger.Logger, rdb redis.UniversalClient) {
	if m == nil || rdb == nil {
		return
	}
	interval := time.Duration(envutil.Int("METRICS_SCRAPE_INTERVAL_SECONDS", 10)) * time.Second
	if interval <= 0 {
		interval = 10 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				start := time.Now()
				if err := rdb.Ping(ctx).Err(); err != nil {
					m.redisUp.Set(0)
					if log != nil {
						log.Warn("metrics: redis ping failed", "error", err)
					}
					continue
				}
				m.redisUp.Set(1)
				m.redisPing.Set(time.Since(start).Seconds())
			}
		}
	}()
}

func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unknown"
	}
	return s
}
