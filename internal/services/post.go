package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yyoonchul/murmur-blog/internal/data/repos"
	types "github.com/yyoonchul/murmur-blog/internal/domain"
	apperrors "github.com/yyoonchul/murmur-blog/internal/pkg/errors"
	"github.com/yyoonchul/murmur-blog/internal/pkg/keymutex"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

type PostInput struct {
	Title   string
	Content string
}

type PostService interface {
	List(ctx context.Context) ([]types.Post, error)
	Get(ctx context.Context, id string) (types.Post, error)
	Create(ctx context.Context, in PostInput) (types.Post, error)
	Update(ctx context.Context, id string, in PostInput) (types.Post, error)
	Delete(ctx context.Context, id string) error
	// Regenerate runs initial seeding again for an existing post.
	Regenerate(ctx context.Context, id string, wait bool) ([]types.Comment, error)
}

type postService struct {
	log        *logger.Logger
	posts      repos.PostRepo
	comments   repos.CommentRepo
	locks      *keymutex.KeyMutex
	generation GenerationService
	now        func() time.Time
}

func NewPostService(
	baseLog *logger.Logger,
	posts repos.PostRepo,
	comments repos.CommentRepo,
	locks *keymutex.KeyMutex,
	generation GenerationService,
) PostService {
	return &postService{
		log:        baseLog.With("service", "PostService"),
		posts:      posts,
		comments:   comments,
		locks:      locks,
		generation: generation,
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

func validatePostInput(in PostInput) (PostInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" || strings.TrimSpace(in.Content) == "" {
		return in, fmt.Errorf("title and content are required: %w", apperrors.ErrInvalidArgument)
	}
	return in, nil
}

func (s *postService) List(ctx context.Context) ([]types.Post, error) {
	return s.posts.List(ctx)
}

func (s *postService) Get(ctx context.Context, id string) (types.Post, error) {
	return s.posts.Get(ctx, id)
}

func (s *postService) Create(ctx context.Context, in PostInput) (types.Post, error) {
	in, err := validatePostInput(in)
	if err != nil {
		return types.Post{}, err
	}
	now := s.now()
	post := types.Post{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.posts.Create(ctx, &post); err != nil {
		return types.Post{}, err
	}
	s.log.Info("post created", "post_id", post.ID)

	if s.generation != nil {
		if err := s.generation.SeedAsync(ctx, post); err != nil {
			s.log.Warn("dispatch initial comments failed", "post_id", post.ID, "error", err)
		}
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, id string, in PostInput) (types.Post, error) {
	in, err := validatePostInput(in)
	if err != nil {
		return types.Post{}, err
	}
	post := types.Post{
		ID:        id,
		Title:     in.Title,
		Content:   in.Content,
		UpdatedAt: s.now(),
	}
	if err := s.posts.Update(ctx, &post); err != nil {
		return types.Post{}, err
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id string) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	unlock := s.lock(id)
	defer unlock()
	if err := s.comments.Delete(ctx, id); err != nil {
		s.log.Warn("delete comments failed", "post_id", id, "error", err)
	}
	s.log.Info("post deleted", "post_id", id)
	return nil
}

func (s *postService) Regenerate(ctx context.Context, id string, wait bool) ([]types.Comment, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.generation == nil {
		return nil, fmt.Errorf("regenerate: %w", apperrors.ErrUnavailable)
	}
	if wait {
		return s.generation.Seed(ctx, post)
	}
	if err := s.generation.SeedAsync(ctx, post); err != nil {
		return nil, err
	}
	return []types.Comment{}, nil
}

func (s *postService) lock(postID string) func() {
	if s.locks == nil {
		return func() {}
	}
	return s.locks.Lock(postID)
}
