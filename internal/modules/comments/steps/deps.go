package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	types "github.com/yyoonchul/murmur-blog/internal/domain"
	"github.com/yyoonchul/murmur-blog/internal/observability"
	"github.com/yyoonchul/murmur-blog/internal/pkg/keymutex"
	"github.com/yyoonchul/murmur-blog/internal/platform/llm"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

// DefaultMaxCommentTokens is the short-form token budget for every comment call.
const DefaultMaxCommentTokens = 1024

// PersonaStore never fails from the generator's point of view; load errors
// surface as an empty roster.
type PersonaStore interface {
	Load(ctx context.Context) types.Roster
}

// CommentStore has whole-list read/replace semantics.
type CommentStore interface {
	Load(ctx context.Context, postID string) ([]types.Comment, error)
	Save(ctx context.Context, postID string, comments []types.Comment) error
}

// PostLookup lets generation drop comments for posts deleted mid-run.
type PostLookup interface {
	Get(ctx context.Context, id string) (types.Post, error)
}

// Notifier is told about every persisted comment. Optional.
type Notifier interface {
	CommentCreated(ctx context.Context, postID string, c types.Comment)
}

type GenerationDeps struct {
	Log      *logger.Logger
	Gateway  llm.Gateway
	Personas PersonaStore
	Comments CommentStore
	Posts    PostLookup

	// Locks serializes read-append-write per post. Shared with every other
	// writer of the same comment lists.
	Locks    *keymutex.KeyMutex
	Rand     Rand
	Notifier Notifier
	Metrics  *observability.Metrics

	MaxTokens  int
	ReplyRules []ReplyRule

	Now   func() time.Time
	NewID func() string
}

var fallbackLocks = keymutex.New()

func (d GenerationDeps) validate() error {
	if d.Log == nil || d.Gateway == nil || d.Personas == nil || d.Comments == nil {
		return fmt.Errorf("comment generation: missing deps")
	}
	return nil
}

func (d GenerationDeps) withDefaults() GenerationDeps {
	if d.Locks == nil {
		d.Locks = fallbackLocks
	}
	if d.Rand == nil {
		d.Rand = SystemRand
	}
	if d.MaxTokens <= 0 {
		d.MaxTokens = DefaultMaxCommentTokens
	}
	if d.ReplyRules == nil {
		d.ReplyRules = DefaultReplyRules
	}
	if d.Now == nil {
		d.Now = func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }
	}
	if d.NewID == nil {
		d.NewID = func() string { return uuid.New().String() }
	}
	return d
}
