package blog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yyoonchul/murmur-blog/internal/data/repos/testutil"
	types "github.com/yyoonchul/murmur-blog/internal/domain"
	apperrors "github.com/yyoonchul/murmur-blog/internal/pkg/errors"
)

func sampleComments() []types.Comment {
	at := time.Date(2025, 3, 1, 9, 30, 0, 123000000, time.UTC)
	return []types.Comment{
		{ID: "c1", PersonaID: "mina", Content: "Loved it.", CreatedAt: at},
		{ID: "c2", PersonaID: "doyun", Content: "Did you, though?", CreatedAt: at.Add(time.Second), ParentID: "c1"},
		{ID: "c3", PersonaID: types.UserPersonaID, Content: "Yes.", CreatedAt: at.Add(2 * time.Second), ParentID: "c1"},
	}
}

func TestCommentFileRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewCommentFileRepo(dir, testutil.Logger(t))

	got, err := repo.Load(ctx, "p1")
	if err != nil || len(got) != 0 {
		t.Fatalf("missing file: err=%v len=%d", err, len(got))
	}

	if err := repo.Save(ctx, "p1", sampleComments()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, err := os.ReadFile(filepath.Join(dir, "p1-comments.json"))
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !strings.Contains(string(raw), `"comments"`) || !strings.Contains(string(raw), `"personaId": "doyun"`) {
		t.Fatalf("unexpected file layout:\n%s", raw)
	}
	if strings.Contains(string(raw), `"parentId": ""`) {
		t.Fatalf("top-level comments should omit parentId:\n%s", raw)
	}

	got, err = repo.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 3 || got[1].ParentID != "c1" || got[2].Content != "Yes." {
		t.Fatalf("loaded: %+v", got)
	}
	if !got[0].CreatedAt.Equal(sampleComments()[0].CreatedAt) {
		t.Fatalf("createdAt: want=%v got=%v", sampleComments()[0].CreatedAt, got[0].CreatedAt)
	}

	if err := repo.Delete(ctx, "p1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "p1"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}

func TestCommentFileRepoCorruptFileLoadsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "p1-comments.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := NewCommentFileRepo(dir, testutil.Logger(t)).Load(context.Background(), "p1")
	if err != nil || len(got) != 0 {
		t.Fatalf("corrupt file: err=%v len=%d", err, len(got))
	}
}

func TestCommentFileRepoRejectsTraversal(t *testing.T) {
	repo := NewCommentFileRepo(t.TempDir(), testutil.Logger(t))
	_, err := repo.Load(context.Background(), "../etc")
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}

func TestCommentRepoReplacesWholeList(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepo(testutil.DB(t), testutil.Logger(t))

	if err := repo.Save(ctx, "p1", sampleComments()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	other := []types.Comment{{ID: "o1", PersonaID: "mina", Content: "other", CreatedAt: time.Now().UTC()}}
	if err := repo.Save(ctx, "p2", other); err != nil {
		t.Fatalf("Save p2: %v", err)
	}

	list := sampleComments()
	list = append(list[:1], list[2])
	if err := repo.Save(ctx, "p1", list); err != nil {
		t.Fatalf("Save replace: %v", err)
	}
	got, err := repo.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c1" || got[1].ID != "c3" {
		t.Fatalf("order after replace: %+v", got)
	}
	if got[1].ParentID != "c1" || got[0].ParentID != "" {
		t.Fatalf("parent ids: %+v", got)
	}

	if err := repo.Delete(ctx, "p1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := repo.Load(ctx, "p1"); len(got) != 0 {
		t.Fatalf("after delete: len=%d", len(got))
	}
	if got, _ := repo.Load(ctx, "p2"); len(got) != 1 {
		t.Fatalf("other post should be untouched: len=%d", len(got))
	}
}
