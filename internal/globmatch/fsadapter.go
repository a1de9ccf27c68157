package globmatch

import (
	"os"
	"path/filepath"
	"strings"
)

// EntityType selects which kind of directory entries FileSystem.List returns.
type EntityType int

const (
	Files EntityType = iota
	Directories
	Both
)

// FileSystem is the pluggable enumerator the walker is built on. Production
// code gets OSFileSystem; tests inject an in-memory fake.
type FileSystem interface {
	// List returns the names (not full paths) of entries of the requested
	// kind directly inside dir whose name matches pattern. Access-denied and
	// missing-directory errors are swallowed to an empty, nil-error result;
	// any other I/O error propagates.
	List(entityType EntityType, dir, pattern string) ([]string, error)

	// DirectoryExists reports whether dir exists and is a directory.
	DirectoryExists(dir string) bool
}

// OSFileSystem is the default FileSystem backed by native OS calls.
type OSFileSystem struct{}

// needsCompatibilityRefilter reports whether pattern falls into one of the
// platform-compatibility cases from §4.2, where a native directory listing
// API is known to match more loosely than the glob syntax promises (e.g. the
// legacy 8.3 short-name matching quirks of FindFirstFile on Windows: a
// three-letter extension with '*' can match a longer real extension, and a
// '?'-suffixed or '?'-terminated pattern can match one character short).
// OSFileSystem lists directories with os.ReadDir and always applies Match
// precisely, so this only matters for FileSystem implementations (such as a
// test fake) that deliberately emulate a looser native listing.
func needsCompatibilityRefilter(pattern string) bool {
	if pattern == "" {
		return false
	}
	if strings.HasSuffix(pattern, "?") {
		return true
	}
	ext := filepath.Ext(pattern)
	if strings.HasPrefix(ext, ".") && strings.HasSuffix(ext, "?") {
		return true
	}
	if len(ext) == 4 && strings.Contains(pattern[:len(pattern)-len(ext)], "*") {
		// ".htm", ".tx?" etc: exactly 3 characters after the dot.
		return true
	}
	return false
}

// List implements FileSystem for the real filesystem.
func (OSFileSystem) List(entityType EntityType, dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []string
	for _, e := range entries {
		switch entityType {
		case Files:
			if e.IsDir() {
				continue
			}
		case Directories:
			if !e.IsDir() {
				continue
			}
		case Both:
			// no filtering
		}
		if pattern != "" && !Match(pattern, e.Name()) {
			continue
		}
		out = append(out, e.Name())
	}
	// needsCompatibilityRefilter is a no-op here since Match already ran
	// precisely above; it exists so alternate FileSystem implementations
	// (native APIs, or test fakes simulating one) know when they must
	// re-narrow a looser raw listing before trusting it.
	_ = needsCompatibilityRefilter(pattern)
	return out, nil
}

// DirectoryExists implements FileSystem.
func (OSFileSystem) DirectoryExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
