package services

import (
	"context"
	"fmt"

	types "github.com/yyoonchul/murmur-blog/internal/domain"
	"github.com/yyoonchul/murmur-blog/internal/jobs/worker"
	"github.com/yyoonchul/murmur-blog/internal/modules/comments"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

const (
	GenerationKindSeed  = "seed"
	GenerationKindReply = "reply"
)

// GenerationService runs comment generation either inline or on the dispatcher.
type GenerationService interface {
	SeedAsync(ctx context.Context, post types.Post) error
	Seed(ctx context.Context, post types.Post) ([]types.Comment, error)
	ReplyAsync(ctx context.Context, post types.Post, trigger types.Comment) error
	Reply(ctx context.Context, post types.Post, trigger types.Comment) ([]types.Comment, error)
}

type generationService struct {
	log        *logger.Logger
	usecases   comments.Usecases
	dispatcher *worker.Dispatcher
	notify     PostNotifier
}

func NewGenerationService(baseLog *logger.Logger, usecases comments.Usecases, dispatcher *worker.Dispatcher, notify PostNotifier) GenerationService {
	if notify == nil {
		notify = NopNotifier
	}
	return &generationService{
		log:        baseLog.With("service", "GenerationService"),
		usecases:   usecases,
		dispatcher: dispatcher,
		notify:     notify,
	}
}

func (s *generationService) Seed(ctx context.Context, post types.Post) ([]types.Comment, error) {
	s.notify.GenerationStarted(ctx, post.ID, GenerationKindSeed)
	out, err := s.usecases.GenerateInitialComments(ctx, comments.GenerateInitialCommentsInput{PostID: post.ID, Post: post.Body()})
	s.notify.GenerationFinished(ctx, post.ID, GenerationKindSeed, len(out.Created))
	return out.Created, err
}

func (s *generationService) SeedAsync(ctx context.Context, post types.Post) error {
	if s.dispatcher == nil {
		return fmt.Errorf("generation: no dispatcher")
	}
	return s.dispatcher.Submit(ctx, "comments.seed", func(taskCtx context.Context) error {
		_, err := s.Seed(taskCtx, post)
		return err
	})
}

func (s *generationService) Reply(ctx context.Context, post types.Post, trigger types.Comment) ([]types.Comment, error) {
	s.notify.GenerationStarted(ctx, post.ID, GenerationKindReply)
	out, err := s.usecases.GenerateReply(ctx, comments.GenerateReplyInput{PostID: post.ID, Post: post.Body(), Trigger: trigger})
	s.notify.GenerationFinished(ctx, post.ID, GenerationKindReply, len(out.Replies))
	return out.Replies, err
}

func (s *generationService) ReplyAsync(ctx context.Context, post types.Post, trigger types.Comment) error {
	if s.dispatcher == nil {
		return fmt.Errorf("generation: no dispatcher")
	}
	return s.dispatcher.Submit(ctx, "comments.reply", func(taskCtx context.Context) error {
		_, err := s.Reply(taskCtx, post, trigger)
		return err
	})
}
