package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opsplat/xplat/internal/globmatch"
	"gopkg.in/yaml.v3"
)

const (
	// ManifestFileName is the default manifest file name.
	ManifestFileName = "xplat.yaml"

	// DefaultAPIVersion is the current API version.
	DefaultAPIVersion = "xplat/v1"
)

// Loader loads manifests from local files.
type Loader struct{}

// NewLoader creates a new manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFile loads a manifest from a local file path.
func (l *Loader) LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return l.parse(data, path)
}

// LoadDir loads a manifest from a directory (looks for xplat.yaml).
func (l *Loader) LoadDir(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFileName)
	return l.LoadFile(path)
}

// parse parses manifest YAML data.
func (l *Loader) parse(data []byte, source string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest from %s: %w", source, err)
	}

	if err := l.validate(&m); err != nil {
		return nil, fmt.Errorf("invalid manifest from %s: %w", source, err)
	}

	return &m, nil
}

// validate checks that the manifest is valid.
func (l *Loader) validate(m *Manifest) error {
	if m.APIVersion != "" && m.APIVersion != DefaultAPIVersion {
		return fmt.Errorf("unsupported apiVersion: %s (expected %s)", m.APIVersion, DefaultAPIVersion)
	}

	if m.Name == "" {
		return fmt.Errorf("name is required")
	}

	if m.Version == "" {
		return fmt.Errorf("version is required")
	}

	return nil
}

// Discover finds all xplat.yaml manifests under root, at any depth,
// using the same item-spec engine the rest of xplat enumerates files with.
func (l *Loader) Discover(root string) ([]*Manifest, error) {
	paths, err := globmatch.GetFiles(globmatch.OSFileSystem{}, root, "**/"+ManifestFileName, nil)
	if err != nil {
		return nil, err
	}

	var manifests []*Manifest
	for _, rel := range paths {
		full := filepath.Join(root, rel)
		m, err := l.LoadFile(full)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", full, err)
			continue
		}
		manifests = append(manifests, m)
	}

	return manifests, nil
}
