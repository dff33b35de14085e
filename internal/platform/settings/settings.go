package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/yyoonchul/murmur-blog/internal/platform/envutil"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

const (
	KeyProvider        = "PROVIDER"
	KeyModel           = "MODEL"
	KeyAnthropicAPIKey = "ANTHROPIC_API_KEY"
	KeyOpenAIAPIKey    = "OPENAI_API_KEY"
	KeyGoogleAPIKey    = "GOOGLE_API_KEY"
)

// Store is the user-editable settings.json. Keys are case-insensitive and
// reported upper-case. The file is re-read whenever its mtime changes.
type Store struct {
	mu      sync.Mutex
	path    string
	log     *logger.Logger
	v       *viper.Viper
	modTime time.Time
}

func NewStore(path string, baseLog *logger.Logger) *Store {
	s := &Store{
		path: path,
		log:  baseLog.With("component", "SettingsStore"),
		v:    newViper(path),
	}
	s.mu.Lock()
	s.refreshLocked()
	s.mu.Unlock()
	return s
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	return v
}

func (s *Store) Path() string { return s.path }

func (s *Store) refreshLocked() {
	info, err := os.Stat(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("stat settings failed", "path", s.path, "error", err)
		}
		if !s.modTime.IsZero() {
			s.v = newViper(s.path)
			s.modTime = time.Time{}
		}
		return
	}
	if info.ModTime().Equal(s.modTime) {
		return
	}
	v := newViper(s.path)
	if err := v.ReadInConfig(); err != nil {
		s.log.Warn("read settings failed, using empty settings", "path", s.path, "error", err)
	}
	s.v = v
	s.modTime = info.ModTime()
}

func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked()
	return strings.TrimSpace(s.v.GetString(key))
}

func (s *Store) All() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked()
	return s.allLocked()
}

func (s *Store) allLocked() map[string]string {
	out := map[string]string{}
	for _, k := range s.v.AllKeys() {
		if val := strings.TrimSpace(s.v.GetString(k)); val != "" {
			out[strings.ToUpper(k)] = val
		}
	}
	return out
}

// Set merges values into the file. Blank values are ignored.
func (s *Store) Set(values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked()

	changed := 0
	for k, val := range values {
		val = strings.TrimSpace(val)
		if k == "" || val == "" {
			continue
		}
		s.v.Set(k, val)
		changed++
	}
	if changed == 0 {
		return nil
	}
	// viper lower-cases keys on write; the file keeps the upper-case names.
	data, err := json.MarshalIndent(s.allLocked(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := writeFileAtomic(s.path, append(data, '\n')); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if info, err := os.Stat(s.path); err == nil {
		s.modTime = info.ModTime()
	}
	s.log.Info("settings updated", "keys", changed)
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// APIKey returns the stored key, else the environment variable of the same name.
func (s *Store) APIKey(name string) string {
	if v := s.Get(name); v != "" {
		return v
	}
	return envutil.String(name, "")
}

// APIKeyName maps a provider name to the settings key holding its API key.
func APIKeyName(provider string) string {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "openai":
		return KeyOpenAIAPIKey
	case "google":
		return KeyGoogleAPIKey
	default:
		return KeyAnthropicAPIKey
	}
}

// Mask keeps the first 7 and last 4 characters.
func Mask(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 11 {
		return strings.Repeat("*", len(key))
	}
	return key[:7] + "..." + key[len(key)-4:]
}
