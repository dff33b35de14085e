package blog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	types "github.com/yyoonchul/murmur-blog/internal/domain"
	apperrors "github.com/yyoonchul/murmur-blog/internal/pkg/errors"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

type PostRepo interface {
	List(ctx context.Context) ([]types.Post, error)
	Get(ctx context.Context, id string) (types.Post, error)
	Create(ctx context.Context, post *types.Post) error
	Update(ctx context.Context, post *types.Post) error
	Delete(ctx context.Context, id string) error
}

type postMeta struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type postFileRepo struct {
	dir string
	log *logger.Logger
	mu  sync.Mutex
}

// NewPostFileRepo keeps metadata in {dir}/posts.json, newest first, and each
// body in {dir}/{id}.md.
func NewPostFileRepo(dir string, baseLog *logger.Logger) PostRepo {
	return &postFileRepo{dir: dir, log: baseLog.With("repo", "PostFileRepo")}
}

func (r *postFileRepo) metaPath() string { return filepath.Join(r.dir, "posts.json") }

func (r *postFileRepo) bodyPath(id string) string { return filepath.Join(r.dir, id+".md") }

func (r *postFileRepo) readMeta() []postMeta {
	raw, err := os.ReadFile(r.metaPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.log.Warn("read posts.json failed", "error", err)
		}
		return []postMeta{}
	}
	var metas []postMeta
	if err := json.Unmarshal(raw, &metas); err != nil {
		r.log.Warn("corrupt posts.json, treating as empty", "error", err)
		return []postMeta{}
	}
	return metas
}

func (r *postFileRepo) writeMeta(metas []postMeta) error {
	raw, err := json.MarshalIndent(metas, "", "  ")
	if err != nil {
		return fmt.Errorf("encode posts: %w", err)
	}
	return writeFileAtomic(r.metaPath(), raw)
}

func (r *postFileRepo) readBody(id string) string {
	raw, err := os.ReadFile(r.bodyPath(id))
	if err != nil {
		return ""
	}
	return string(raw)
}

func (r *postFileRepo) toPost(m postMeta) types.Post {
	return types.Post{
		ID:        m.ID,
		Title:     m.Title,
		Content:   r.readBody(m.ID),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *postFileRepo) List(ctx context.Context) ([]types.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	metas := r.readMeta()
	out := make([]types.Post, 0, len(metas))
	for _, m := range metas {
		out = append(out, r.toPost(m))
	}
	return out, nil
}

func (r *postFileRepo) Get(ctx context.Context, id string) (types.Post, error) {
	if err := checkID(id); err != nil {
		return types.Post{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.readMeta() {
		if m.ID == id {
			return r.toPost(m), nil
		}
	}
	return types.Post{}, fmt.Errorf("post %s: %w", id, apperrors.ErrNotFound)
}

func (r *postFileRepo) Create(ctx context.Context, post *types.Post) error {
	if post == nil {
		return fmt.Errorf("%w: nil post", apperrors.ErrInvalidArgument)
	}
	if err := checkID(post.ID); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	metas := r.readMeta()
	for _, m := range metas {
		if m.ID == post.ID {
			return fmt.Errorf("%w: post %s already exists", apperrors.ErrInvalidArgument, post.ID)
		}
	}
	if err := writeFileAtomic(r.bodyPath(post.ID), []byte(post.Content)); err != nil {
		return fmt.Errorf("write post body: %w", err)
	}
	metas = append([]postMeta{{ID: post.ID, Title: post.Title, CreatedAt: post.CreatedAt, UpdatedAt: post.UpdatedAt}}, metas...)
	return r.writeMeta(metas)
}

func (r *postFileRepo) Update(ctx context.Context, post *types.Post) error {
	if post == nil {
		return fmt.Errorf("%w: nil post", apperrors.ErrInvalidArgument)
	}
	if err := checkID(post.ID); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	metas := r.readMeta()
	for i := range metas {
		if metas[i].ID != post.ID {
			continue
		}
		metas[i].Title = post.Title
		metas[i].UpdatedAt = post.UpdatedAt
		post.CreatedAt = metas[i].CreatedAt
		if err := writeFileAtomic(r.bodyPath(post.ID), []byte(post.Content)); err != nil {
			return fmt.Errorf("write post body: %w", err)
		}
		return r.writeMeta(metas)
	}
	return fmt.Errorf("post %s: %w", post.ID, apperrors.ErrNotFound)
}

func (r *postFileRepo) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	metas := r.readMeta()
	for i := range metas {
		if metas[i].ID != id {
			continue
		}
		metas = append(metas[:i], metas[i+1:]...)
		if err := r.writeMeta(metas); err != nil {
			return err
		}
		if err := os.Remove(r.bodyPath(id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			r.log.Warn("remove post body failed", "post_id", id, "error", err)
		}
		return nil
	}
	return fmt.Errorf("post %s: %w", id, apperrors.ErrNotFound)
}
