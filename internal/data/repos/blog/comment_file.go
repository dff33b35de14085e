package blog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	types "github.com/yyoonchul/murmur-blog/internal/domain"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

type CommentRepo interface {
	Load(ctx context.Context, postID string) ([]types.Comment, error)
	Save(ctx context.Context, postID string, comments []types.Comment) error
	Delete(ctx context.Context, postID string) error
}

type commentsFile struct {
	Comments []types.Comment `json:"comments"`
}

type commentFileRepo struct {
	dir string
	log *logger.Logger
}

// NewCommentFileRepo stores each post's comments in {dir}/{postID}-comments.json.
func NewCommentFileRepo(dir string, baseLog *logger.Logger) CommentRepo {
	return &commentFileRepo{dir: dir, log: baseLog.With("repo", "CommentFileRepo")}
}

func (r *commentFileRepo) path(postID string) string {
	return filepath.Join(r.dir, postID+"-comments.json")
}

// Load returns an empty list for a missing or unreadable file.
func (r *commentFileRepo) Load(ctx context.Context, postID string) ([]types.Comment, error) {
	if err := checkID(postID); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(r.path(postID))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.log.Warn("read comments failed, treating as empty", "post_id", postID, "error", err)
		}
		return []types.Comment{}, nil
	}
	var data commentsFile
	if err := json.Unmarshal(raw, &data); err != nil {
		r.log.Warn("corrupt comments file, treating as empty", "post_id", postID, "error", err)
		return []types.Comment{}, nil
	}
	out := make([]types.Comment, 0, len(data.Comments))
	for i, c := range data.Comments {
		c.PostID = postID
		c.Seq = i
		out = append(out, c)
	}
	return out, nil
}

func (r *commentFileRepo) Save(ctx context.Context, postID string, comments []types.Comment) error {
	if err := checkID(postID); err != nil {
		return err
	}
	if comments == nil {
		comments = []types.Comment{}
	}
	raw, err := json.MarshalIndent(commentsFile{Comments: comments}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode comments: %w", err)
	}
	return writeFileAtomic(r.path(postID), raw)
}

func (r *commentFileRepo) Delete(ctx context.Context, postID string) error {
	if err := checkID(postID); err != nil {
		return err
	}
	if err := os.Remove(r.path(postID)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
