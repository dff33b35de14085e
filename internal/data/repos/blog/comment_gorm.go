package blog

import (
	"context"

	"gorm.io/gorm"

	types "github.com/yyoonchul/murmur-blog/internal/domain"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

type commentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCommentRepo(db *gorm.DB, baseLog *logger.Logger) CommentRepo {
	return &commentRepo{db: db, log: baseLog.With("repo", "CommentRepo")}
}

func (r *commentRepo) Load(ctx context.Context, postID string) ([]types.Comment, error) {
	var rows []types.Comment
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("seq ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []types.Comment{}
	}
	return rows, nil
}

// Save replaces the post's whole list in one transaction, keeping list order in seq.
func (r *commentRepo) Save(ctx context.Context, postID string, comments []types.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&types.Comment{}).Error; err != nil {
			return err
		}
		if len(comments) == 0 {
			return nil
		}
		rows := make([]types.Comment, len(comments))
		for i, c := range comments {
			c.PostID = postID
			c.Seq = i
			rows[i] = c
		}
		return tx.Create(&rows).Error
	})
}

func (r *commentRepo) Delete(ctx context.Context, postID string) error {
	return r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&types.Comment{}).Error
}
