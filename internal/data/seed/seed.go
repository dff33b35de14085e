package seed

import (
	"context"
	"embed"
	"fmt"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/yyoonchul/murmur-blog/internal/data/repos"
	types "github.com/yyoonchul/murmur-blog/internal/domain"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

//go:embed personas/*.yaml personas/*.md
var personaFS embed.FS

// DefaultRoster returns the built-in persona library with voice text attached.
func DefaultRoster() (types.Roster, error) {
	raw, err := personaFS.ReadFile("personas/personas.yaml")
	if err != nil {
		return types.Roster{}, fmt.Errorf("read default roster: %w", err)
	}
	var roster types.Roster
	if err := yaml.Unmarshal(raw, &roster); err != nil {
		return types.Roster{}, fmt.Errorf("decode default roster: %w", err)
	}
	for i, p := range roster.Personas {
		voice, err := personaFS.ReadFile(path.Join("personas", p.PromptFile))
		if err != nil {
			return types.Roster{}, fmt.Errorf("read voice %s: %w", p.PromptFile, err)
		}
		roster.Personas[i].PromptContent = string(voice)
	}
	return roster, nil
}

// InstallPersonas writes the default library through repo. An existing
// non-empty roster is left alone unless force is set.
func InstallPersonas(ctx context.Context, log *logger.Logger, repo repos.PersonaRepo, force bool) (bool, error) {
	if !force && !repo.Load(ctx).IsEmpty() {
		log.Info("persona roster already present, skipping", "dir", repo.Dir())
		return false, nil
	}
	roster, err := DefaultRoster()
	if err != nil {
		return false, err
	}
	if err := repo.Save(ctx, roster); err != nil {
		return false, err
	}
	log.Info("default personas installed", "dir", repo.Dir(), "personas", len(roster.Personas))
	return true, nil
}
