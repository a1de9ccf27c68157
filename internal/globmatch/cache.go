package globmatch

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"golang.org/x/sync/singleflight"
)

// cacheEnabled gates the process-wide result cache described in §4.8. It
// defaults to on, matching the teacher convention of "fast by default,
// escape hatch via env var" used elsewhere for tunables (see internal/config).
var cacheEnabled = struct {
	mu      sync.RWMutex
	enabled bool
}{enabled: true}

// SetCacheEnabled toggles the process-wide GetFiles result cache. Tests use
// this to force a clean run; internal/config.ApplyCacheEnv, called from
// main.go, wires it to an environment variable.
func SetCacheEnabled(v bool) {
	cacheEnabled.mu.Lock()
	cacheEnabled.enabled = v
	cacheEnabled.mu.Unlock()
}

func isCacheEnabled() bool {
	cacheEnabled.mu.RLock()
	defer cacheEnabled.mu.RUnlock()
	return cacheEnabled.enabled
}

var (
	cacheMu    sync.RWMutex
	cacheStore = map[string][]string{}
	cacheGroup singleflight.Group
)

// ResetCache drops every cached enumeration. Intended for tests; production
// code never needs to call this since cache entries are keyed by their full
// input and never go stale for a given (projectDirectory, include, excludes)
// triple within one process lifetime.
func ResetCache() {
	cacheMu.Lock()
	cacheStore = map[string][]string{}
	cacheMu.Unlock()
}

// cacheKey digests the full enumeration request into a single lookup key.
func cacheKey(projectDirectory, includeFilespec string, excludeFilespecs []string) string {
	h := sha256.New()
	h.Write([]byte(projectDirectory))
	h.Write([]byte{0})
	h.Write([]byte(includeFilespec))
	for _, e := range excludeFilespecs {
		h.Write([]byte{0})
		h.Write([]byte(e))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// withCache executes compute at most once per key across all concurrent
// callers (via singleflight), storing and returning a defensive copy of the
// result so that callers who mutate their returned slice can never corrupt
// the cached entry or each other's copies (§4.8).
func withCache(key string, compute func() ([]string, error)) ([]string, error) {
	if !isCacheEnabled() {
		return compute()
	}

	cacheMu.RLock()
	if hit, ok := cacheStore[key]; ok {
		cacheMu.RUnlock()
		return copyStrings(hit), nil
	}
	cacheMu.RUnlock()

	v, err, _ := cacheGroup.Do(key, func() (any, error) {
		cacheMu.RLock()
		if hit, ok := cacheStore[key]; ok {
			cacheMu.RUnlock()
			return hit, nil
		}
		cacheMu.RUnlock()

		result, err := compute()
		if err != nil {
			return nil, err
		}
		stored := copyStrings(result)
		cacheMu.Lock()
		cacheStore[key] = stored
		cacheMu.Unlock()
		return stored, nil
	})
	if err != nil {
		return nil, err
	}
	return copyStrings(v.([]string)), nil
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// cacheDebugKeys is a small test helper exposing the current key set without
// leaking the underlying map reference.
func cacheDebugKeys() []string {
	cacheMu.RLock()
	defer cacheMu.RUnlock()
	keys := make([]string, 0, len(cacheStore))
	for k := range cacheStore {
		keys = append(keys, k)
	}
	return keys
}
