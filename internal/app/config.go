package app

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/yyoonchul/murmur-blog/internal/data/db"
	"github.com/yyoonchul/murmur-blog/internal/platform/envutil"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

const (
	StorageFile = "file"

	defaultPort = "3001"
)

type Config struct {
	Port        string
	Environment string
	LogMode     string

	DataDir       string
	StorageDriver string
	DatabaseDSN   string

	// AllowSettingsRemote disables the loopback guard on settings routes in production.
	AllowSettingsRemote bool

	LLMTimeout       time.Duration
	LLMRatePerSecond float64
	LLMRateBurst     int
	MaxCommentTokens int
	DefaultProvider  string
	AnthropicBaseURL string
	OpenAIBaseURL    string
	GoogleBaseURL    string

	DispatchWorkers int
	DispatchQueue   int

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisChannel  string
}

func LoadConfig(log *logger.Logger) Config {
	dataDir := envutil.String("DATA_DIR", "data")
	cfg := Config{
		Port:        envutil.String("PORT", defaultPort),
		Environment: strings.ToLower(envutil.String("APP_ENV", envutil.String("NODE_ENV", "development"))),
		LogMode:     envutil.String("LOG_MODE", "development"),

		DataDir:       dataDir,
		StorageDriver: strings.ToLower(envutil.String("STORAGE_DRIVER", StorageFile)),
		DatabaseDSN:   envutil.String("DATABASE_URL", ""),

		AllowSettingsRemote: envutil.String("ALLOW_SETTINGS_REMOTE", "") == "1",

		LLMTimeout:       time.Duration(envutil.Int("LLM_TIMEOUT_SECONDS", 60)) * time.Second,
		LLMRatePerSecond: envutil.Float("LLM_RATE_PER_SECOND", 0),
		LLMRateBurst:     envutil.Int("LLM_RATE_BURST", 1),
		MaxCommentTokens: envutil.Int("MAX_COMMENT_TOKENS", 1024),
		DefaultProvider:  strings.ToLower(envutil.String("DEFAULT_PROVIDER", "anthropic")),
		AnthropicBaseURL: envutil.String("ANTHROPIC_BASE_URL", ""),
		OpenAIBaseURL:    envutil.String("OPENAI_BASE_URL", ""),
		GoogleBaseURL:    envutil.String("GOOGLE_BASE_URL", ""),

		DispatchWorkers: envutil.Int("DISPATCH_WORKERS", 2),
		DispatchQueue:   envutil.Int("DISPATCH_QUEUE", 64),

		RedisAddr:     envutil.String("REDIS_ADDR", ""),
		RedisPassword: envutil.String("REDIS_PASSWORD", ""),
		RedisDB:       envutil.Int("REDIS_DB", 0),
		RedisChannel:  envutil.String("REDIS_CHANNEL", "murmur:sse"),
	}
	if cfg.DatabaseDSN == "" && cfg.StorageDriver == db.DriverSQLite {
		cfg.DatabaseDSN = filepath.Join(dataDir, "murmur.db")
	}
	if log != nil {
		log.Info("config loaded",
			"port", cfg.Port,
			"env", cfg.Environment,
			"data_dir", cfg.DataDir,
			"storage_driver", cfg.StorageDriver,
			"dispatch_workers", cfg.DispatchWorkers,
			"redis", cfg.RedisAddr != "",
		)
	}
	return cfg
}

func (c Config) PostsDir() string     { return filepath.Join(c.DataDir, "posts") }
func (c Config) PersonaDir() string   { return filepath.Join(c.DataDir, "persona") }
func (c Config) SettingsPath() string { return filepath.Join(c.DataDir, "settings.json") }

// RestrictSettings reports whether settings and persona routes are limited to loopback peers.
func (c Config) RestrictSettings() bool {
	return c.Environment == "production" && !c.AllowSettingsRemote
}

func (c Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
