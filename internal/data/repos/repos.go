package repos

import (
	"gorm.io/gorm"

	"github.com/yyoonchul/murmur-blog/internal/data/repos/blog"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

type CommentRepo = blog.CommentRepo
type PostRepo = blog.PostRepo
type PersonaRepo = blog.PersonaRepo

func NewCommentFileRepo(dir string, log *logger.Logger) CommentRepo {
	return blog.NewCommentFileRepo(dir, log)
}

func NewCommentRepo(db *gorm.DB, log *logger.Logger) CommentRepo {
	return blog.NewCommentRepo(db, log)
}

func NewPostFileRepo(dir string, log *logger.Logger) PostRepo {
	return blog.NewPostFileRepo(dir, log)
}

func NewPostRepo(db *gorm.DB, log *logger.Logger) PostRepo {
	return blog.NewPostRepo(db, log)
}

func NewPersonaFileRepo(dir string, log *logger.Logger) PersonaRepo {
	return blog.NewPersonaFileRepo(dir, log)
}
