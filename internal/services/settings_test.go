package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/yyoonchul/murmur-blog/internal/data/repos"
	types "github.com/yyoonchul/murmur-blog/internal/domain"
	apperrors "github.com/yyoonchul/murmur-blog/internal/pkg/errors"
	"github.com/yyoonchul/murmur-blog/internal/platform/llm"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
	"github.com/yyoonchul/murmur-blog/internal/platform/settings"
)

func newSettingsService(t *testing.T) (SettingsService, *settings.Store) {
	t.Helper()
	log := logger.NewNop()
	store := settings.NewStore(filepath.Join(t.TempDir(), "settings.json"), log)
	router := llm.NewRouter(log, store, llm.ProviderAnthropic,
		llm.NewAnthropicProvider(store, ""),
		llm.NewOpenAIProvider(store, ""),
		llm.NewGoogleProvider(store, ""),
	)
	return NewSettingsService(log, store, router), store
}

func TestSettingsStatusUnconfigured(t *testing.T) {
	t.Setenv(settings.KeyAnthropicAPIKey, "")
	svc, _ := newSettingsService(t)
	st, err := svc.Status()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.Provider != llm.ProviderAnthropic {
		t.Fatalf("provider: want=anthropic got=%s", st.Provider)
	}
	if st.APIKeyConfigured || st.APIKeyMasked != nil {
		t.Fatalf("key should be unconfigured: %+v", st)
	}
}

func TestSettingsUpdateStoresKeyForProvider(t *testing.T) {
	t.Setenv(settings.KeyOpenAIAPIKey, "")
	svc, store := newSettingsService(t)
	st, err := svc.Update(SettingsUpdate{Provider: "OpenAI", APIKey: "sk-proj-abcdefghijkl1234"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if st.Provider != "openai" {
		t.Fatalf("provider: want=openai got=%s", st.Provider)
	}
	if !st.APIKeyConfigured || st.APIKeyMasked == nil || *st.APIKeyMasked != "sk-proj...1234" {
		t.Fatalf("masked: got=%+v", st)
	}
	if got := store.Get(settings.KeyOpenAIAPIKey); got != "sk-proj-abcdefghijkl1234" {
		t.Fatalf("stored key: got=%q", got)
	}
	if st.Model != "gpt-5-mini" {
		t.Fatalf("model: want provider default got=%s", st.Model)
	}

	// blank fields leave stored values alone
	st, err = svc.Update(SettingsUpdate{Model: "gpt-5"})
	if err != nil {
		t.Fatalf("update model: %v", err)
	}
	if st.Provider != "openai" || st.Model != "gpt-5" || !st.APIKeyConfigured {
		t.Fatalf("after model update: got=%+v", st)
	}
}

func TestSettingsUpdateRejectsUnknownProvider(t *testing.T) {
	svc, _ := newSettingsService(t)
	if _, err := svc.Update(SettingsUpdate{Provider: "mistral"}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("unknown provider: want ErrInvalidArgument got=%v", err)
	}
}

func TestSettingsStatusUsesEnvFallback(t *testing.T) {
	t.Setenv(settings.KeyAnthropicAPIKey, "sk-ant-envkey-9876")
	svc, _ := newSettingsService(t)
	st, err := svc.Status()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !st.APIKeyConfigured || *st.APIKeyMasked != "sk-ant-...9876" {
		t.Fatalf("env fallback: got=%+v", st)
	}
}

func TestSettingsModelsListsProviders(t *testing.T) {
	svc, _ := newSettingsService(t)
	models, err := svc.Models()
	if err != nil {
		t.Fatalf("models: %v", err)
	}
	if len(models) != 3 || models[0].Provider != "anthropic" || models[2].Provider != "openai" {
		t.Fatalf("providers: got=%+v", models)
	}
	for _, m := range models {
		if len(m.Models) == 0 {
			t.Fatalf("%s: expected at least one model", m.Provider)
		}
	}
}

func TestPersonaServiceSaveAndGet(t *testing.T) {
	log := logger.NewNop()
	svc := NewPersonaService(log, repos.NewPersonaFileRepo(t.TempDir(), log))
	ctx := context.Background()

	empty := svc.Get(ctx)
	if empty.Personas == nil || len(empty.Personas) != 0 {
		t.Fatalf("empty roster should have a non-nil empty list: %+v", empty)
	}
	if _, err := svc.Save(ctx, types.Roster{}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("nil personas: want ErrInvalidArgument got=%v", err)
	}
	dup := types.Roster{Personas: []types.Persona{{ID: "mina"}, {ID: "mina"}}}
	if _, err := svc.Save(ctx, dup); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("duplicate id: want ErrInvalidArgument got=%v", err)
	}

	saved, err := svc.Save(ctx, types.Roster{
		Personas:      []types.Persona{{ID: "mina", Name: "Mina", PromptFile: "mina.md", PromptContent: "warm and curious"}},
		FeedbackOrder: []string{"mina"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(saved.Personas) != 1 || saved.Personas[0].PromptContent != "warm and curious" {
		t.Fatalf("saved roster: got=%+v", saved)
	}
}
