package seed

import (
	"context"
	"testing"

	"github.com/yyoonchul/murmur-blog/internal/data/repos"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

func TestDefaultRosterCoversReplyRules(t *testing.T) {
	roster, err := DefaultRoster()
	if err != nil {
		t.Fatalf("default roster: %v", err)
	}
	if len(roster.Personas) != 5 {
		t.Fatalf("personas: want=5 got=%d", len(roster.Personas))
	}
	for _, p := range roster.Personas {
		if p.PromptContent == "" {
			t.Fatalf("%s: voice should be loaded", p.ID)
		}
	}
	for _, id := range roster.FeedbackOrder {
		if _, ok := roster.Find(id); !ok {
			t.Fatalf("feedbackOrder references unknown persona %q", id)
		}
	}
	// personas named by the inter-persona reply pairs
	for _, id := range []string{"doyun", "mina", "jihoon", "eunseo", "suhyun"} {
		if _, ok := roster.Find(id); !ok {
			t.Fatalf("persona %q missing", id)
		}
	}
}

func TestInstallPersonasSkipsExistingRoster(t *testing.T) {
	log := logger.NewNop()
	repo := repos.NewPersonaFileRepo(t.TempDir(), log)
	ctx := context.Background()

	installed, err := InstallPersonas(ctx, log, repo, false)
	if err != nil || !installed {
		t.Fatalf("first install: installed=%v err=%v", installed, err)
	}
	loaded := repo.Load(ctx)
	if len(loaded.Personas) != 5 || loaded.Personas[0].PromptContent == "" {
		t.Fatalf("loaded roster: got=%+v", loaded)
	}

	installed, err = InstallPersonas(ctx, log, repo, false)
	if err != nil || installed {
		t.Fatalf("second install should skip: installed=%v err=%v", installed, err)
	}
	installed, err = InstallPersonas(ctx, log, repo, true)
	if err != nil || !installed {
		t.Fatalf("forced install: installed=%v err=%v", installed, err)
	}
}
