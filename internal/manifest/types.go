// Package manifest provides types and parsing for xplat.yaml manifests.
package manifest

import (
	"sort"

	"github.com/opsplat/xplat/internal/globmatch"
)

// Manifest represents an xplat.yaml package manifest. Its primary job is
// describing which files belong to a package (Files) and where its
// Taskfile lives; the remaining metadata fields are descriptive only.
type Manifest struct {
	APIVersion  string `yaml:"apiVersion"`
	Kind        string `yaml:"kind"`
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	License     string `yaml:"license"`
	Repo        string `yaml:"repo,omitempty"` // GitHub repo name (e.g., "plat-rush"), defaults to name

	Taskfile  *TaskfileConfig  `yaml:"taskfile,omitempty"`
	Files     *FilesConfig     `yaml:"files,omitempty"`
	Gitignore *GitignoreConfig `yaml:"gitignore,omitempty"`
}

// RepoName returns the GitHub repo name (Repo field or falls back to Name).
func (m *Manifest) RepoName() string {
	if m.Repo != "" {
		return m.Repo
	}
	return m.Name
}

// TaskfileConfig defines the taskfile for remote include.
type TaskfileConfig struct {
	Path      string `yaml:"path"`
	Namespace string `yaml:"namespace,omitempty"`
}

// FilesConfig declares the include/exclude filespecs that make up a
// package's file set, in the same syntax internal/globmatch accepts.
type FilesConfig struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// GitignoreConfig defines custom gitignore patterns.
type GitignoreConfig struct {
	// Extra patterns to add to .gitignore (in addition to base patterns)
	Patterns []string `yaml:"patterns,omitempty"`
}

// HasFiles returns true if the manifest declares a file set.
func (m *Manifest) HasFiles() bool {
	return m.Files != nil && len(m.Files.Include) > 0
}

// HasGitignore returns true if the manifest defines custom gitignore patterns.
func (m *Manifest) HasGitignore() bool {
	return m.Gitignore != nil && len(m.Gitignore.Patterns) > 0
}

// ResolveFiles enumerates the manifest's declared file set against dir,
// unioning every include filespec and applying all excludes to each.
// Results are deduplicated and sorted.
func (m *Manifest) ResolveFiles(dir string) ([]string, error) {
	if !m.HasFiles() {
		return nil, nil
	}

	seen := make(map[string]bool)
	var out []string
	for _, include := range m.Files.Include {
		matches, err := globmatch.GetFiles(globmatch.OSFileSystem{}, dir, include, m.Files.Exclude)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			out = append(out, match)
		}
	}
	sort.Strings(out)
	return out, nil
}

// TaskfileURL returns the full URL for remote taskfile include.
func (m *Manifest) TaskfileURL(repoURL string) string {
	if m.Taskfile == nil || m.Taskfile.Path == "" {
		return ""
	}
	return repoURL + ".git//" + m.Taskfile.Path + "?ref=" + m.Version
}
