package filesystem

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"iconpack/internal/domain"
)

// IconRepository implements ports.IconRepository using the filesystem
type IconRepository struct{}

// NewIconRepository creates a new filesystem icon repository
func NewIconRepository() *IconRepository {
	return &IconRepository{}
}

// Glob returns the regular files under root matching pattern, as cleaned slash paths.
// The root is opened as an fs.FS so glob metacharacters in it are taken literally.
func (r *IconRepository) Glob(root, pattern string) ([]string, error) {
	if !r.IsDir(root) {
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to glob %s in %s: %w", pattern, root, err)
	}

	root = domain.NormalizePath(root)
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		files = append(files, domain.NormalizePath(path.Join(root, m)))
	}
	return files, nil
}

// Exists reports whether anything exists at p
func (r *IconRepository) Exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// IsDir reports whether p is an existing directory
func (r *IconRepository) IsDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

// ReadFile returns the content of the file at p
func (r *IconRepository) ReadFile(p string) ([]byte, error) {
	return os.ReadFile(p)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return path.Join(domain.NormalizePath(home), domain.NormalizePath(p[1:]))
}
