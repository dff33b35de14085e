package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yyoonchul/murmur-blog/internal/data/db"
	"github.com/yyoonchul/murmur-blog/internal/data/repos"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

type Repos struct {
	Posts    repos.PostRepo
	Comments repos.CommentRepo
	Personas repos.PersonaRepo
}

// openStorage returns nil for the file backend.
func openStorage(log *logger.Logger, cfg Config) (*gorm.DB, error) {
	switch cfg.StorageDriver {
	case "", StorageFile:
		return nil, nil
	case db.DriverSQLite, db.DriverPostgres:
		if cfg.DatabaseDSN == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for storage driver %q", cfg.StorageDriver)
		}
		return db.Open(db.Config{Driver: cfg.StorageDriver, DSN: cfg.DatabaseDSN}, log)
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

func wireRepos(log *logger.Logger, cfg Config, gdb *gorm.DB) Repos {
	log.Info("Wiring repos...", "storage_driver", cfg.StorageDriver)
	out := Repos{Personas: repos.NewPersonaFileRepo(cfg.PersonaDir(), log)}
	if gdb == nil {
		out.Posts = repos.NewPostFileRepo(cfg.PostsDir(), log)
		out.Comments = repos.NewCommentFileRepo(cfg.PostsDir(), log)
		return out
	}
	out.Posts = repos.NewPostRepo(gdb, log)
	out.Comments = repos.NewCommentRepo(gdb, log)
	return out
}
