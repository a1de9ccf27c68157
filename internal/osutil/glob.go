package osutil

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"
)

// ShellGlob expands a shell-style glob pattern, including brace expansion
// and character classes, and returns matching file paths. This is a
// deliberately separate engine from internal/globmatch: doublestar covers
// shell-glob syntax (e.g. "{a,b}", "[abc]") that project item specs never
// need, so a "glob --shell" style invocation gets this instead of the
// include/exclude enumeration engine. On Windows, symlinks are not
// followed.
func ShellGlob(pattern string) ([]string, error) {
	var opts []doublestar.GlobOption
	if runtime.GOOS == "windows" {
		opts = append(opts, doublestar.WithNoFollow())
	}

	if filepath.IsAbs(pattern) {
		return doublestar.FilepathGlob(pattern, opts...)
	}

	return doublestar.Glob(os.DirFS("."), pattern, opts...)
}

// ShellGlobIn expands a shell-style glob pattern relative to a base
// directory, returning matches joined back onto baseDir.
func ShellGlobIn(baseDir, pattern string) ([]string, error) {
	var opts []doublestar.GlobOption
	if runtime.GOOS == "windows" {
		opts = append(opts, doublestar.WithNoFollow())
	}

	matches, err := doublestar.Glob(os.DirFS(baseDir), pattern, opts...)
	if err != nil {
		return nil, err
	}

	// Join matches back onto baseDir
	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = filepath.Join(baseDir, m)
	}
	return result, nil
}
