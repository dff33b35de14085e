package services

import (
	"fmt"
	"strings"

	apperrors "github.com/yyoonchul/murmur-blog/internal/pkg/errors"
	"github.com/yyoonchul/murmur-blog/internal/platform/llm"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
	"github.com/yyoonchul/murmur-blog/internal/platform/settings"
)

type SettingsStatus struct {
	Provider         string  `json:"provider"`
	Model            string  `json:"model"`
	APIKeyConfigured bool    `json:"apiKeyConfigured"`
	APIKeyMasked     *string `json:"apiKeyMasked"`
}

type SettingsUpdate struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	APIKey   string `json:"apiKey"`
}

type ProviderModels struct {
	Provider     string          `json:"provider"`
	DefaultModel string          `json:"defaultModel"`
	Models       []llm.ModelInfo `json:"models"`
}

type SettingsService interface {
	Status() (SettingsStatus, error)
	Update(in SettingsUpdate) (SettingsStatus, error)
	Models() ([]ProviderModels, error)
}

type settingsService struct {
	log    *logger.Logger
	store  *settings.Store
	router *llm.Router
}

func NewSettingsService(baseLog *logger.Logger, store *settings.Store, router *llm.Router) SettingsService {
	return &settingsService{
		log:    baseLog.With("service", "SettingsService"),
		store:  store,
		router: router,
	}
}

func (s *settingsService) Status() (SettingsStatus, error) {
	p, err := s.router.Active()
	if err != nil {
		return SettingsStatus{}, err
	}
	out := SettingsStatus{
		Provider: p.Name(),
		Model:    s.router.ResolveModel(p, ""),
	}
	if key := s.store.APIKey(settings.APIKeyName(p.Name())); key != "" {
		masked := settings.Mask(key)
		out.APIKeyConfigured = true
		out.APIKeyMasked = &masked
	}
	return out, nil
}

// Update stores the non-blank fields. The API key is filed under the
// provider being set, or the active one when none is given.
func (s *settingsService) Update(in SettingsUpdate) (SettingsStatus, error) {
	provider := strings.ToLower(strings.TrimSpace(in.Provider))
	if provider != "" {
		if _, ok := s.router.Provider(provider); !ok {
			return SettingsStatus{}, fmt.Errorf("unknown provider %q: %w", provider, apperrors.ErrInvalidArgument)
		}
	}

	values := map[string]string{
		settings.KeyProvider: provider,
		settings.KeyModel:    in.Model,
	}
	if key := strings.TrimSpace(in.APIKey); key != "" {
		target := provider
		if target == "" {
			active, err := s.router.Active()
			if err != nil {
				return SettingsStatus{}, err
			}
			target = active.Name()
		}
		values[settings.APIKeyName(target)] = key
	}
	if err := s.store.Set(values); err != nil {
		return SettingsStatus{}, err
	}
	return s.Status()
}

func (s *settingsService) Models() ([]ProviderModels, error) {
	names := s.router.Names()
	out := make([]ProviderModels, 0, len(names))
	for _, name := range names {
		p, ok := s.router.Provider(name)
		if !ok {
			continue
		}
		out = append(out, ProviderModels{
			Provider:     name,
			DefaultModel: p.DefaultModel(),
			Models:       p.Models(),
		})
	}
	return out, nil
}
