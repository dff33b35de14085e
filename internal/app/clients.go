package app

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yyoonchul/murmur-blog/internal/observability"
	"github.com/yyoonchul/murmur-blog/internal/platform/llm"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
	"github.com/yyoonchul/murmur-blog/internal/platform/settings"
	"github.com/yyoonchul/murmur-blog/internal/realtime/bus"
)

type Clients struct {
	Settings *settings.Store
	Router   *llm.Router
	// Gateway is Router behind the timeout, rate limit and instrumentation layers.
	Gateway llm.Gateway

	Redis goredis.UniversalClient
	Bus   bus.Bus
}

func wireClients(log *logger.Logger, cfg Config, metrics *observability.Metrics) (Clients, error) {
	log.Info("Wiring clients...")

	store := settings.NewStore(cfg.SettingsPath(), log)
	router := llm.NewRouter(log, store, cfg.DefaultProvider,
		llm.NewAnthropicProvider(store, cfg.AnthropicBaseURL),
		llm.NewOpenAIProvider(store, cfg.OpenAIBaseURL),
		llm.NewGoogleProvider(store, cfg.GoogleBaseURL),
	)
	var gateway llm.Gateway = router
	gateway = llm.WithTimeout(gateway, cfg.LLMTimeout)
	gateway = llm.WithRateLimit(gateway, cfg.LLMRatePerSecond, cfg.LLMRateBurst)
	gateway = llm.WithInstrumentation(gateway, router, metrics)

	out := Clients{
		Settings: store,
		Router:   router,
		Gateway:  gateway,
	}

	// Redis
	if cfg.RedisAddr == "" {
		out.Bus = bus.NewLocalBus()
		return out, nil
	}
	rdb, err := bus.NewRedisClient(bus.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Channel:  cfg.RedisChannel,
	})
	if err != nil {
		return Clients{}, fmt.Errorf("init redis: %w", err)
	}
	b, err := bus.NewRedisBus(log, rdb, cfg.RedisChannel)
	if err != nil {
		_ = rdb.Close()
		return Clients{}, fmt.Errorf("init redis SSE bus: %w", err)
	}
	out.Redis = rdb
	out.Bus = b
	return out, nil
}
