package services

import (
	"context"
	"fmt"

	"github.com/yyoonchul/murmur-blog/internal/data/repos"
	types "github.com/yyoonchul/murmur-blog/internal/domain"
	apperrors "github.com/yyoonchul/murmur-blog/internal/pkg/errors"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

type PersonaService interface {
	Get(ctx context.Context) types.Roster
	Save(ctx context.Context, roster types.Roster) (types.Roster, error)
}

type personaService struct {
	log      *logger.Logger
	personas repos.PersonaRepo
}

func NewPersonaService(baseLog *logger.Logger, personas repos.PersonaRepo) PersonaService {
	return &personaService{
		log:      baseLog.With("service", "PersonaService"),
		personas: personas,
	}
}

func (s *personaService) Get(ctx context.Context) types.Roster {
	roster := s.personas.Load(ctx)
	if roster.Personas == nil {
		roster.Personas = []types.Persona{}
	}
	if roster.FeedbackOrder == nil {
		roster.FeedbackOrder = []string{}
	}
	return roster
}

func (s *personaService) Save(ctx context.Context, roster types.Roster) (types.Roster, error) {
	if roster.Personas == nil {
		return types.Roster{}, fmt.Errorf("personas must be an array: %w", apperrors.ErrInvalidArgument)
	}
	seen := map[string]struct{}{}
	for _, p := range roster.Personas {
		if p.ID == "" {
			return types.Roster{}, fmt.Errorf("persona id is required: %w", apperrors.ErrInvalidArgument)
		}
		if _, dup := seen[p.ID]; dup {
			return types.Roster{}, fmt.Errorf("duplicate persona id %q: %w", p.ID, apperrors.ErrInvalidArgument)
		}
		seen[p.ID] = struct{}{}
	}
	if err := s.personas.Save(ctx, roster); err != nil {
		return types.Roster{}, err
	}
	s.log.Info("personas saved", "count", len(roster.Personas))
	return s.Get(ctx), nil
}
