package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("NODE_ENV", "")
	return LoadConfig(nil)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LLM_TIMEOUT_SECONDS", "")
	t.Setenv("DISPATCH_WORKERS", "")
	cfg := testConfig(t)
	if cfg.Addr() != ":3001" {
		t.Fatalf("addr: want=:3001 got=%s", cfg.Addr())
	}
	if cfg.StorageDriver != StorageFile {
		t.Fatalf("storage: want=file got=%s", cfg.StorageDriver)
	}
	if cfg.LLMTimeout != 60*time.Second || cfg.DispatchWorkers != 2 || cfg.DispatchQueue != 64 {
		t.Fatalf("defaults: got=%+v", cfg)
	}
	if cfg.RestrictSettings() {
		t.Fatalf("development should not restrict settings")
	}
}

func TestConfigRestrictSettings(t *testing.T) {
	t.Setenv("NODE_ENV", "production")
	t.Setenv("ALLOW_SETTINGS_REMOTE", "")
	cfg := LoadConfig(nil)
	if !cfg.RestrictSettings() {
		t.Fatalf("production should restrict settings")
	}
	t.Setenv("ALLOW_SETTINGS_REMOTE", "1")
	if LoadConfig(nil).RestrictSettings() {
		t.Fatalf("ALLOW_SETTINGS_REMOTE=1 should lift the restriction")
	}
}

func TestConfigSQLiteDefaultDSN(t *testing.T) {
	t.Setenv("DATA_DIR", "/srv/murmur")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "")
	cfg := LoadConfig(nil)
	if cfg.DatabaseDSN != "/srv/murmur/murmur.db" {
		t.Fatalf("dsn: got=%q", cfg.DatabaseDSN)
	}
}

func TestAppServesPostLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	a, err := New(context.Background(), logger.NewNop(), cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer a.Close()
	engine := a.Server.Engine

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		return rec
	}

	if rec := do(http.MethodGet, "/api/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("health: want=200 got=%d", rec.Code)
	}

	rec := do(http.MethodPost, "/api/posts", `{"title":"First","content":"Body"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: want=201 got=%d body=%s", rec.Code, rec.Body.String())
	}
	var post struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &post); err != nil || post.ID == "" {
		t.Fatalf("decode post: %v body=%s", err, rec.Body.String())
	}

	rec = do(http.MethodGet, "/api/posts/"+post.ID+"/comments", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"comments":[]`) {
		t.Fatalf("comments: code=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = do(http.MethodGet, "/api/settings", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"provider":"anthropic"`) {
		t.Fatalf("settings: code=%d body=%s", rec.Code, rec.Body.String())
	}

	if rec := do(http.MethodDelete, "/api/posts/"+post.ID, ""); rec.Code != http.StatusOK {
		t.Fatalf("delete: want=200 got=%d", rec.Code)
	}
	if rec := do(http.MethodGet, "/api/posts/"+post.ID, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("get deleted: want=404 got=%d", rec.Code)
	}
}
