package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"zhprep/internal/domain"
)

// Walker finds batch input files by include/exclude glob patterns.
type Walker struct {
	includes []string
	excludes []string
}

// NewWalker creates a walker. Empty includes match every file.
func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = []string{"**/*"}
	}
	return &Walker{
		includes: includes,
		excludes: excludes,
	}
}

// Discover resolves the input argument into a sorted list of files. The
// argument may be a single file, a directory (walked with the configured
// patterns), or a doublestar glob.
func (w *Walker) Discover(input string) ([]string, error) {
	info, err := os.Stat(input)
	switch {
	case err == nil && !info.IsDir():
		return []string{input}, nil
	case err == nil:
		return w.walk(input)
	}

	// Not a path on disk: treat as a glob pattern.
	matches, err := doublestar.FilepathGlob(input)
	if err != nil {
		return nil, fmt.Errorf("%w: bad input pattern %q: %v", domain.ErrInput, input, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no files match %q", domain.ErrInput, input)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && !info.IsDir() && !w.shouldExclude(m) {
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

func (w *Walker) walk(root string) ([]string, error) {
	var files []string

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if w.shouldExclude(relPath + "/") {
				return filepath.SkipDir
			}
			return nil
		}

		if w.shouldInclude(relPath) && !w.shouldExclude(relPath) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func (w *Walker) shouldInclude(path string) bool {
	for _, pattern := range w.includes {
		matched, err := doublestar.Match(pattern, filepath.ToSlash(path))
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (w *Walker) shouldExclude(path string) bool {
	for _, pattern := range w.excludes {
		matched, err := doublestar.Match(pattern, filepath.ToSlash(path))
		if err == nil && matched {
			return true
		}
	}
	return false
}
