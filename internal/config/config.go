// Package config provides centralized configuration defaults for xplat.
//
// Directory layout helpers live in internal/paths; this package holds the
// remaining small, cross-cutting defaults: the default Taskfile name and the
// environment-variable toggle for the glob-match result cache.
package config

import (
	"os"
	"strconv"

	"github.com/opsplat/xplat/internal/globmatch"
)

// === Default paths ===

const (
	// DefaultTaskfile is the default Taskfile path.
	DefaultTaskfile = "Taskfile.yml"
)

// CacheEnvVar is the environment variable that toggles the process-wide
// glob enumeration cache off. Its value is read with strconv.ParseBool: set
// it to "0", "f" or "false" to disable the cache; unparsable values are
// ignored. Disabling is useful
// e.g. when iterating on a filesystem under a fuzzer or a test harness that
// mutates the tree between calls within a single process.
const CacheEnvVar = "XPLAT_FILEGLOB_CACHE"

// ApplyCacheEnv reads CacheEnvVar and applies it to the globmatch package's
// cache toggle. Call this once during CLI startup; main.go calls it before
// the root command executes.
func ApplyCacheEnv() {
	v := os.Getenv(CacheEnvVar)
	if v == "" {
		return
	}
	enabled, err := strconv.ParseBool(v)
	if err != nil {
		return
	}
	globmatch.SetCacheEnabled(enabled)
}
