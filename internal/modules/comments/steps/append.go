package steps

import (
	"context"
	"errors"
	"fmt"

	types "github.com/yyoonchul/murmur-blog/internal/domain"
	apperrors "github.com/yyoonchul/murmur-blog/internal/pkg/errors"
	"github.com/yyoonchul/murmur-blog/internal/pkg/keymutex"
)

// ErrPostDeleted is returned when a comment targets a post that no longer exists.
var ErrPostDeleted = errors.New("post deleted")

// AppendComment re-reads the post's comments, appends c and saves, all while
// holding the post's lock.
func AppendComment(ctx context.Context, locks *keymutex.KeyMutex, store CommentStore, postID string, c types.Comment) error {
	return AppendCommentIfPostExists(ctx, locks, nil, store, postID, c)
}

// AppendCommentIfPostExists is AppendComment with a post lookup under the same
// lock. A nil posts skips the lookup.
func AppendCommentIfPostExists(ctx context.Context, locks *keymutex.KeyMutex, posts PostLookup, store CommentStore, postID string, c types.Comment) error {
	if locks == nil {
		locks = fallbackLocks
	}
	return locks.Do(postID, func() error {
		if postDeleted(ctx, posts, postID) {
			return ErrPostDeleted
		}
		list, err := store.Load(ctx, postID)
		if err != nil {
			return fmt.Errorf("load comments: %w", err)
		}
		list = append(list, c)
		if err := store.Save(ctx, postID, list); err != nil {
			return fmt.Errorf("save comments: %w", err)
		}
		return nil
	})
}

// postDeleted is true only for a definite not-found; lookup failures count as present.
func postDeleted(ctx context.Context, posts PostLookup, postID string) bool {
	if posts == nil {
		return false
	}
	_, err := posts.Get(ctx, postID)
	return errors.Is(err, apperrors.ErrNotFound)
}
