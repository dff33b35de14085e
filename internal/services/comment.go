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

type AddCommentInput struct {
	PostID   string
	Content  string
	ParentID string
	// Wait runs reply generation inline and returns the replies.
	Wait bool
}

type AddCommentOutput struct {
	Comment types.Comment
	Replies []types.Comment
}

type CommentService interface {
	List(ctx context.Context, postID string) ([]types.Comment, error)
	AddUserComment(ctx context.Context, in AddCommentInput) (AddCommentOutput, error)
	// Delete removes the comment and every reply below it. It returns the removed ids.
	Delete(ctx context.Context, postID, commentID string) ([]string, error)
}

type commentService struct {
	log        *logger.Logger
	posts      repos.PostRepo
	comments   repos.CommentRepo
	locks      *keymutex.KeyMutex
	generation GenerationService
	notify     PostNotifier
	now        func() time.Time
}

func NewCommentService(
	baseLog *logger.Logger,
	posts repos.PostRepo,
	comments repos.CommentRepo,
	locks *keymutex.KeyMutex,
	generation GenerationService,
	notify PostNotifier,
) CommentService {
	if locks == nil {
		locks = keymutex.New()
	}
	if notify == nil {
		notify = NopNotifier
	}
	return &commentService{
		log:        baseLog.With("service", "CommentService"),
		posts:      posts,
		comments:   comments,
		locks:      locks,
		generation: generation,
		notify:     notify,
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

func (s *commentService) List(ctx context.Context, postID string) ([]types.Comment, error) {
	if _, err := s.posts.Get(ctx, postID); err != nil {
		return nil, err
	}
	out, err := s.comments.Load(ctx, postID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []types.Comment{}
	}
	return out, nil
}

func (s *commentService) AddUserComment(ctx context.Context, in AddCommentInput) (AddCommentOutput, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return AddCommentOutput{}, fmt.Errorf("content is required: %w", apperrors.ErrInvalidArgument)
	}
	post, err := s.posts.Get(ctx, in.PostID)
	if err != nil {
		return AddCommentOutput{}, err
	}

	c := types.Comment{
		ID:        uuid.New().String(),
		PersonaID: types.UserPersonaID,
		Content:   content,
		CreatedAt: s.now(),
		ParentID:  strings.TrimSpace(in.ParentID),
	}
	err = s.locks.Do(in.PostID, func() error {
		existing, err := s.comments.Load(ctx, in.PostID)
		if err != nil {
			return err
		}
		if c.ParentID != "" && !containsComment(existing, c.ParentID) {
			return fmt.Errorf("parent comment %s: %w", c.ParentID, apperrors.ErrNotFound)
		}
		return s.comments.Save(ctx, in.PostID, append(existing, c))
	})
	if err != nil {
		return AddCommentOutput{}, err
	}
	s.log.Info("user comment added", "post_id", in.PostID, "comment_id", c.ID, "parent_id", c.ParentID)
	s.notify.CommentCreated(ctx, in.PostID, c)

	out := AddCommentOutput{Comment: c, Replies: []types.Comment{}}
	if s.generation == nil {
		return out, nil
	}
	if in.Wait {
		replies, err := s.generation.Reply(ctx, post, c)
		if err != nil {
			s.log.Warn("reply generation failed", "post_id", in.PostID, "error", err)
		}
		if replies != nil {
			out.Replies = replies
		}
		return out, nil
	}
	if err := s.generation.ReplyAsync(ctx, post, c); err != nil {
		s.log.Warn("dispatch reply failed", "post_id", in.PostID, "error", err)
	}
	return out, nil
}

func (s *commentService) Delete(ctx context.Context, postID, commentID string) ([]string, error) {
	if _, err := s.posts.Get(ctx, postID); err != nil {
		return nil, err
	}
	var removed []string
	err := s.locks.Do(postID, func() error {
		existing, err := s.comments.Load(ctx, postID)
		if err != nil {
			return err
		}
		if !containsComment(existing, commentID) {
			return fmt.Errorf("comment %s: %w", commentID, apperrors.ErrNotFound)
		}
		drop := descendants(existing, commentID)
		kept := make([]types.Comment, 0, len(existing))
		for _, c := range existing {
			if _, ok := drop[c.ID]; ok {
				removed = append(removed, c.ID)
				continue
			}
			kept = append(kept, c)
		}
		return s.comments.Save(ctx, postID, kept)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("comments deleted", "post_id", postID, "root_id", commentID, "count", len(removed))
	s.notify.CommentsDeleted(ctx, postID, removed)
	return removed, nil
}

func containsComment(comments []types.Comment, id string) bool {
	for _, c := range comments {
		if c.ID == id {
			return true
		}
	}
	return false
}

// descendants returns rootID plus every comment whose ancestor chain reaches it.
func descendants(comments []types.Comment, rootID string) map[string]struct{} {
	children := map[string][]string{}
	for _, c := range comments {
		if c.ParentID != "" {
			children[c.ParentID] = append(children[c.ParentID], c.ID)
		}
	}
	out := map[string]struct{}{rootID: {}}
	queue := []string{rootID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, child := range children[id] {
			if _, seen := out[child]; seen {
				continue
			}
			out[child] = struct{}{}
			queue = append(queue, child)
		}
	}
	return out
}
