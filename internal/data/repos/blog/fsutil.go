package blog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/yyoonchul/murmur-blog/internal/pkg/errors"
)

// writeFileAtomic writes through a temp file in the same directory and
// renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// checkID rejects ids that could escape the data directory.
func checkID(id string) error {
	if strings.TrimSpace(id) == "" || strings.Contains(id, "..") || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("%w: bad id %q", apperrors.ErrInvalidArgument, id)
	}
	return nil
}
