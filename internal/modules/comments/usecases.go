package comments

import (
	"context"

	"github.com/yyoonchul/murmur-blog/internal/modules/comments/steps"
	"github.com/yyoonchul/murmur-blog/internal/observability"
	"github.com/yyoonchul/murmur-blog/internal/pkg/keymutex"
	"github.com/yyoonchul/murmur-blog/internal/platform/llm"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

type (
	PersonaStore = steps.PersonaStore
	CommentStore = steps.CommentStore
	PostLookup   = steps.PostLookup
	Notifier     = steps.Notifier
	Rand         = steps.Rand

	GenerateInitialCommentsInput  = steps.GenerateInitialCommentsInput
	GenerateInitialCommentsOutput = steps.GenerateInitialCommentsOutput
	GenerateReplyInput            = steps.GenerateReplyInput
	GenerateReplyOutput           = steps.GenerateReplyOutput
)

type UsecasesDeps struct {
	Log      *logger.Logger
	Gateway  llm.Gateway
	Personas PersonaStore
	Comments CommentStore
	Posts    PostLookup
	Locks    *keymutex.KeyMutex
	Notifier Notifier
	Metrics  *observability.Metrics

	// Optional.
	Rand      Rand
	MaxTokens int
}

type Usecases struct {
	deps UsecasesDeps
}

func New(deps UsecasesDeps) Usecases { return Usecases{deps: deps} }

func (u Usecases) WithLog(log *logger.Logger) Usecases {
	u.deps.Log = log
	return u
}

func (u Usecases) generationDeps() steps.GenerationDeps {
	return steps.GenerationDeps{
		Log:       u.deps.Log,
		Gateway:   u.deps.Gateway,
		Personas:  u.deps.Personas,
		Comments:  u.deps.Comments,
		Posts:     u.deps.Posts,
		Locks:     u.deps.Locks,
		Rand:      u.deps.Rand,
		Notifier:  u.deps.Notifier,
		Metrics:   u.deps.Metrics,
		MaxTokens: u.deps.MaxTokens,
	}
}

func (u Usecases) GenerateInitialComments(ctx context.Context, in GenerateInitialCommentsInput) (GenerateInitialCommentsOutput, error) {
	return steps.GenerateInitialComments(ctx, u.generationDeps(), in)
}

func (u Usecases) GenerateReply(ctx context.Context, in GenerateReplyInput) (GenerateReplyOutput, error) {
	return steps.GenerateReply(ctx, u.generationDeps(), in)
}
