package blog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	types "github.com/yyoonchul/murmur-blog/internal/domain"
	apperrors "github.com/yyoonchul/murmur-blog/internal/pkg/errors"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

const (
	personasJSON = "personas.json"
	personasYAML = "personas.yaml"
)

type PersonaRepo interface {
	// Load never fails; any read problem yields an empty roster.
	Load(ctx context.Context) types.Roster
	Save(ctx context.Context, roster types.Roster) error
	Dir() string
}

// personaEntry is a Persona as written to the roster file, without its voice text.
type personaEntry struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Role        string `json:"role" yaml:"role"`
	Emoji       string `json:"emoji" yaml:"emoji"`
	Color       string `json:"color" yaml:"color"`
	BgColor     string `json:"bgColor" yaml:"bgColor"`
	BorderColor string `json:"borderColor" yaml:"borderColor"`
	PromptFile  string `json:"promptFile" yaml:"promptFile"`
}

type rosterFile struct {
	Personas            []personaEntry `json:"personas" yaml:"personas"`
	FeedbackOrder       []string       `json:"feedbackOrder" yaml:"feedbackOrder"`
	FeedbackOrderReason string         `json:"feedbackOrderReason" yaml:"feedbackOrderReason"`
}

type personaFileRepo struct {
	dir string
	log *logger.Logger
}

// NewPersonaFileRepo reads personas.yaml when present, else personas.json,
// plus one markdown voice file per persona.
func NewPersonaFileRepo(dir string, baseLog *logger.Logger) PersonaRepo {
	return &personaFileRepo{dir: dir, log: baseLog.With("repo", "PersonaFileRepo")}
}

func (r *personaFileRepo) Dir() string { return r.dir }

// IsSafePromptFile accepts bare ".md" file names only.
func IsSafePromptFile(name string) bool {
	if name == "" || !strings.HasSuffix(name, ".md") {
		return false
	}
	return !strings.Contains(name, "..") && !strings.ContainsAny(name, `/\`)
}

func (r *personaFileRepo) promptPath(name string) (string, bool) {
	if !IsSafePromptFile(name) {
		return "", false
	}
	return filepath.Join(r.dir, name), true
}

func (r *personaFileRepo) rosterPath() (string, bool) {
	yamlPath := filepath.Join(r.dir, personasYAML)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath, true
	}
	return filepath.Join(r.dir, personasJSON), false
}

func (r *personaFileRepo) Load(ctx context.Context) types.Roster {
	path, isYAML := r.rosterPath()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.log.Warn("persona roster not found", "path", path)
		} else {
			r.log.Error("read persona roster failed", "path", path, "error", err)
		}
		return types.Roster{}
	}

	var data rosterFile
	if isYAML {
		err = yaml.Unmarshal(raw, &data)
	} else {
		err = json.Unmarshal(raw, &data)
	}
	if err != nil {
		r.log.Error("decode persona roster failed", "path", path, "error", err)
		return types.Roster{}
	}

	roster := types.Roster{
		Personas:            make([]types.Persona, 0, len(data.Personas)),
		FeedbackOrder:       data.FeedbackOrder,
		FeedbackOrderReason: data.FeedbackOrderReason,
	}
	if roster.FeedbackOrder == nil {
		roster.FeedbackOrder = []string{}
	}
	for _, e := range data.Personas {
		p := types.Persona{
			ID:          e.ID,
			Name:        e.Name,
			Role:        e.Role,
			Emoji:       e.Emoji,
			Color:       e.Color,
			BgColor:     e.BgColor,
			BorderColor: e.BorderColor,
			PromptFile:  e.PromptFile,
		}
		if pp, ok := r.promptPath(e.PromptFile); ok {
			if voice, err := os.ReadFile(pp); err == nil {
				p.PromptContent = string(voice)
			} else {
				r.log.Warn("read persona voice failed", "persona_id", e.ID, "prompt_file", e.PromptFile, "error", err)
			}
		} else {
			r.log.Warn("unsafe prompt file ignored", "persona_id", e.ID, "prompt_file", e.PromptFile)
		}
		roster.Personas = append(roster.Personas, p)
	}
	return roster
}

// Save writes each voice file, then the roster file without voice text.
func (r *personaFileRepo) Save(ctx context.Context, roster types.Roster) error {
	if roster.Personas == nil {
		return fmt.Errorf("%w: personas array is required", apperrors.ErrInvalidArgument)
	}
	data := rosterFile{
		Personas:            make([]personaEntry, 0, len(roster.Personas)),
		FeedbackOrder:       roster.FeedbackOrder,
		FeedbackOrderReason: roster.FeedbackOrderReason,
	}
	if data.FeedbackOrder == nil {
		data.FeedbackOrder = []string{}
	}
	for _, p := range roster.Personas {
		if pp, ok := r.promptPath(p.PromptFile); ok {
			if err := writeFileAtomic(pp, []byte(p.PromptContent)); err != nil {
				return fmt.Errorf("write voice for %s: %w", p.ID, err)
			}
		}
		data.Personas = append(data.Personas, personaEntry{
			ID:          p.ID,
			Name:        p.Name,
			Role:        p.Role,
			Emoji:       p.Emoji,
			Color:       p.Color,
			BgColor:     p.BgColor,
			BorderColor: p.BorderColor,
			PromptFile:  p.PromptFile,
		})
	}

	path, isYAML := r.rosterPath()
	var (
		raw []byte
		err error
	)
	if isYAML {
		raw, err = yaml.Marshal(data)
	} else {
		raw, err = json.MarshalIndent(data, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	if err := writeFileAtomic(path, raw); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}
	r.log.Info("persona roster saved", "path", path, "personas", len(data.Personas))
	return nil
}
