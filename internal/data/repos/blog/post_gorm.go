package blog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	types "github.com/yyoonchul/murmur-blog/internal/domain"
	apperrors "github.com/yyoonchul/murmur-blog/internal/pkg/errors"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

type postRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo {
	return &postRepo{db: db, log: baseLog.With("repo", "PostRepo")}
}

func (r *postRepo) List(ctx context.Context) ([]types.Post, error) {
	var rows []types.Post
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []types.Post{}
	}
	return rows, nil
}

func (r *postRepo) Get(ctx context.Context, id string) (types.Post, error) {
	var row types.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return types.Post{}, fmt.Errorf("post %s: %w", id, apperrors.ErrNotFound)
	}
	return row, err
}

func (r *postRepo) Create(ctx context.Context, post *types.Post) error {
	if post == nil {
		return fmt.Errorf("%w: nil post", apperrors.ErrInvalidArgument)
	}
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepo) Update(ctx context.Context, post *types.Post) error {
	if post == nil {
		return fmt.Errorf("%w: nil post", apperrors.ErrInvalidArgument)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&types.Post{}).
			Where("id = ?", post.ID).
			Updates(map[string]any{
				"title":      post.Title,
				"content":    post.Content,
				"updated_at": post.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("post %s: %w", post.ID, apperrors.ErrNotFound)
		}
		var stored types.Post
		if err := tx.Where("id = ?", post.ID).First(&stored).Error; err != nil {
			return err
		}
		post.CreatedAt = stored.CreatedAt
		return nil
	})
}

func (r *postRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&types.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("post %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
