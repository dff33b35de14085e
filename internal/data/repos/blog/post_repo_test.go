package blog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yyoonchul/murmur-blog/internal/data/repos/testutil"
	types "github.com/yyoonchul/murmur-blog/internal/domain"
	apperrors "github.com/yyoonchul/murmur-blog/internal/pkg/errors"
)

func exercisePostRepo(t *testing.T, repo PostRepo) {
	t.Helper()
	ctx := context.Background()
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	first := &types.Post{ID: "p1", Title: "First", Content: "# one", CreatedAt: t0, UpdatedAt: t0}
	second := &types.Post{ID: "p2", Title: "Second", Content: "two", CreatedAt: t0.Add(time.Hour), UpdatedAt: t0.Add(time.Hour)}
	for _, p := range []*types.Post{first, second} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create %s: %v", p.ID, err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != "p2" || list[1].ID != "p1" {
		t.Fatalf("List should be newest first: %+v", list)
	}
	if list[1].Content != "# one" {
		t.Fatalf("content: want=%q got=%q", "# one", list[1].Content)
	}

	upd := &types.Post{ID: "p1", Title: "First (edited)", Content: "# one!", UpdatedAt: t0.Add(2 * time.Hour)}
	if err := repo.Update(ctx, upd); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !upd.CreatedAt.Equal(t0) {
		t.Fatalf("Update should report stored createdAt: got=%v", upd.CreatedAt)
	}
	got, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "First (edited)" || got.Content != "# one!" || !got.UpdatedAt.Equal(t0.Add(2*time.Hour)) {
		t.Fatalf("after update: %+v", got)
	}

	if err := repo.Update(ctx, &types.Post{ID: "nope", Title: "x"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("Update missing: want ErrNotFound got %v", err)
	}
	if err := repo.Delete(ctx, "p1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, "p1"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("Get deleted: want ErrNotFound got %v", err)
	}
	if err := repo.Delete(ctx, "p1"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("Delete twice: want ErrNotFound got %v", err)
	}
}

func TestPostFileRepo(t *testing.T) {
	dir := t.TempDir()
	exercisePostRepo(t, NewPostFileRepo(dir, testutil.Logger(t)))

	if _, err := os.Stat(filepath.Join(dir, "p1.md")); !os.IsNotExist(err) {
		t.Fatalf("p1.md should be removed, stat err=%v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "p2.md")); err != nil {
		t.Fatalf("p2.md should exist: %v", err)
	}
}

func TestPostRepoGorm(t *testing.T) {
	exercisePostRepo(t, NewPostRepo(testutil.DB(t), testutil.Logger(t)))
}
