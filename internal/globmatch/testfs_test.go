package globmatch

import (
	"sort"
	"strings"
)

// memFS is an in-memory FileSystem fake for tests. Directories are keys that
// end in '/'; files are plain keys. Every ancestor directory of an inserted
// path is implicitly present.
type memFS struct {
	dirs  map[string]bool
	files map[string]bool
}

func newMemFS() *memFS {
	return &memFS{dirs: map[string]bool{}, files: map[string]bool{}}
}

// addFile registers a file at p (forward-slash, relative to the fake root)
// and marks every ancestor directory as existing.
func (m *memFS) addFile(p string) *memFS {
	p = strings.TrimPrefix(p, "./")
	m.files[p] = true
	parts := strings.Split(p, "/")
	for i := 1; i < len(parts); i++ {
		dir := strings.Join(parts[:i], "/")
		m.dirs[dir] = true
	}
	m.dirs["."] = true
	return m
}

func (m *memFS) addDir(p string) *memFS {
	p = strings.TrimPrefix(p, "./")
	m.dirs[p] = true
	return m
}

func (m *memFS) List(entityType EntityType, dir, pattern string) ([]string, error) {
	dir = strings.TrimPrefix(strings.TrimSuffix(dir, "/"), "./")
	if dir == "" {
		dir = "."
	}
	seen := map[string]bool{}
	var out []string
	add := func(name string, isDir bool) {
		switch entityType {
		case Files:
			if isDir {
				return
			}
		case Directories:
			if !isDir {
				return
			}
		}
		if pattern != "" && !Match(pattern, name) {
			return
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for d := range m.dirs {
		parent, name := splitParent(d)
		if parent == dir {
			add(name, true)
		}
	}
	for f := range m.files {
		parent, name := splitParent(f)
		if parent == dir {
			add(name, false)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *memFS) DirectoryExists(dir string) bool {
	dir = strings.TrimPrefix(strings.TrimSuffix(dir, "/"), "./")
	if dir == "" || dir == "." {
		return true
	}
	return m.dirs[dir]
}

func splitParent(p string) (parent, name string) {
	idx := strings.LastIndexByte(p, '/')
	if idx == -1 {
		return ".", p
	}
	return p[:idx], p[idx+1:]
}
