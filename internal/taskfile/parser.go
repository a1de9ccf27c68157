// Package taskfile provides Taskfile parsing and validation utilities.
package taskfile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/opsplat/xplat/internal/globmatch"
	"gopkg.in/yaml.v3"
)

// Taskfile represents a parsed Taskfile with all relevant sections.
type Taskfile struct {
	Path     string           // File path
	Version  string           `yaml:"version"`
	Includes map[string]any   `yaml:"includes"` // Can be string or map with taskfile/optional keys
	Vars     map[string]any   `yaml:"vars"`
	Tasks    map[string]Task  `yaml:"tasks"`

	// Parsed metadata
	RawContent []byte
	Lines      []string // For line number lookups
}

// Task represents a task definition.
type Task struct {
	Desc      string         `yaml:"desc"`
	Deps      []any          `yaml:"deps"`
	Cmds      []any          `yaml:"cmds"`
	Status    []string       `yaml:"status"`
	Vars      map[string]any `yaml:"vars"`
	Requires  *Requires      `yaml:"requires"`
	Internal  bool           `yaml:"internal"`
	Sources   []string       `yaml:"sources"`
	Excludes  []string       `yaml:"excludes"`
	Generates []string       `yaml:"generates"`
}

// ResolveSources enumerates a task's declared sources filespecs against
// dir, excluding any file matched by Excludes. This is the same
// include/exclude enumeration exposed via `xplat os match-files`. Results
// are deduplicated and sorted.
func (t *Task) ResolveSources(dir string) ([]string, error) {
	if len(t.Sources) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool)
	var out []string
	for _, src := range t.Sources {
		matches, err := globmatch.GetFiles(globmatch.OSFileSystem{}, dir, src, t.Excludes)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Requires represents task requirements.
type Requires struct {
	Vars []string `yaml:"vars"`
}

// Parse reads and parses a Taskfile from the given path.
func Parse(path string) (*Taskfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tf Taskfile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, err
	}

	tf.Path = path
	tf.RawContent = data
	tf.Lines = strings.Split(string(data), "\n")

	return &tf, nil
}

// GetVarString returns a var's value if it is a string, or "" if the var is
// missing or of another type. Template expressions are returned unexpanded.
func (tf *Taskfile) GetVarString(name string) string {
	if v, ok := tf.Vars[name]; ok {
		switch val := v.(type) {
		case string:
			return val
		case int:
			return ""
		case bool:
			return ""
		}
	}
	return ""
}

// HasVar checks if a variable with the given pattern exists.
// Pattern can be:
//   - Suffix: "_CGO" matches "DUMMY_CGO"
//   - Contains: "_BUILD_" matches "GO_BUILD_DIR"
func (tf *Taskfile) HasVar(pattern string) bool {
	pattern = strings.ToUpper(pattern)
	for k := range tf.Vars {
		upperK := strings.ToUpper(k)
		// Check both suffix and contains
		if strings.HasSuffix(upperK, pattern) || strings.Contains(upperK, pattern) {
			return true
		}
	}
	return false
}

// GetVarBySuffix returns the first var matching the suffix.
// For example, GetVarBySuffix("_BIN") might return "DUMMY_BIN", "dummy{{exeExt}}".
func (tf *Taskfile) GetVarBySuffix(suffix string) (name, value string, found bool) {
	for k, v := range tf.Vars {
		if strings.HasSuffix(strings.ToUpper(k), strings.ToUpper(suffix)) {
			switch val := v.(type) {
			case string:
				return k, val, true
			}
		}
	}
	return "", "", false
}

// HasVarValue checks if any variable matching the suffix has the given value.
// For example, HasVarValue("_CGO", "1") returns true if DUMMY_CGO='1'.
func (tf *Taskfile) HasVarValue(suffix, value string) bool {
	for k, v := range tf.Vars {
		if strings.HasSuffix(strings.ToUpper(k), strings.ToUpper(suffix)) {
			switch val := v.(type) {
			case string:
				// Handle quoted values like '1' or "1"
				cleanVal := strings.Trim(val, "'\"")
				if cleanVal == value {
					return true
				}
			}
		}
	}
	return false
}

// HasTask checks if a task exists.
func (tf *Taskfile) HasTask(name string) bool {
	_, ok := tf.Tasks[name]
	return ok
}

// GetTask returns a task by name.
func (tf *Taskfile) GetTask(name string) (Task, bool) {
	t, ok := tf.Tasks[name]
	return t, ok
}

// FindLineNumber finds the line number (1-indexed) of a pattern in the file.
func (tf *Taskfile) FindLineNumber(pattern string) int {
	for i, line := range tf.Lines {
		if strings.Contains(line, pattern) {
			return i + 1
		}
	}
	return 0
}

// FindTaskfiles recursively finds all Taskfiles in a directory tree,
// skipping hidden directories.
func FindTaskfiles(root string) ([]string, error) {
	rel, err := globmatch.GetFiles(globmatch.OSFileSystem{}, root, "**/Taskfile*.yml", []string{"**/.*/**"})
	if err != nil {
		return nil, err
	}

	files := make([]string, len(rel))
	for i, r := range rel {
		files[i] = filepath.Join(root, r)
	}
	return files, nil
}
