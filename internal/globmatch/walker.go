package globmatch

import (
	"path"
	"strings"
)

// searchState tracks one pending directory to visit plus the slice of
// wildcardDir still to be consumed below it. Only the include has a
// searchState; excludes travel alongside it as excludePlans (see
// carryForward).
type searchState struct {
	baseDirectory              string
	remainingWildcardDirectory string
}

// step decides, for a single remainingWildcardDirectory value, what the next
// path segment requires: plain recursion into a named-or-wildcarded
// subdirectory, or "**" recursive descent that also considers the current
// directory itself.
type stepKind int

const (
	stepFiles stepKind = iota // remainingWildcardDirectory is empty: list files here
	stepSubdir
	stepRecursive // "**" leads this remainingWildcardDirectory
)

func classifyStep(remainingWildcardDirectory string) (kind stepKind, segment, rest string) {
	if remainingWildcardDirectory == "" {
		return stepFiles, "", ""
	}
	trimmed := strings.TrimSuffix(remainingWildcardDirectory, "/")
	idx := strings.IndexByte(remainingWildcardDirectory, '/')
	var first string
	if idx == -1 {
		first, rest = trimmed, ""
	} else {
		first, rest = remainingWildcardDirectory[:idx], remainingWildcardDirectory[idx+1:]
	}
	if first == "**" {
		return stepRecursive, first, rest
	}
	return stepSubdir, first, rest
}

// walk performs the recursive enumeration of §4.6. results accumulates
// matched file paths built by joining baseDirectory and the entry names, so
// they still carry any projectDirectory prefix (computeFiles strips it
// afterwards). lockstepExcludes is the set of
// exclude plans that travel alongside this include at the same directory
// depth (§4.7's Equal and promoted-**-from-shallower cases); deferred is
// keyed by a normalized absolute-ish directory path and holds exclude plans
// that only become active once the walk reaches that specific subdirectory
// (§4.7's ExcludeDeeperPrefixed case).
func walk(
	fs FileSystem,
	state searchState,
	filename string,
	lockstepExcludes []*excludePlan,
	deferred map[string][]*excludePlan,
	results *[]string,
) error {
	if !fs.DirectoryExists(state.baseDirectory) {
		return nil
	}

	kind, segment, rest := classifyStep(state.remainingWildcardDirectory)

	switch kind {
	case stepFiles:
		names, err := fs.List(Files, state.baseDirectory, filename)
		if err != nil {
			return err
		}
		for _, name := range names {
			full := joinPath(state.baseDirectory, name)
			if excludedByAny(full, lockstepExcludes) {
				continue
			}
			*results = append(*results, full)
		}
		return nil

	case stepSubdir:
		dirNames, err := fs.List(Directories, state.baseDirectory, segment)
		if err != nil {
			return err
		}
		for _, dname := range dirNames {
			sub := joinPath(state.baseDirectory, dname)
			nextLockstep, nextDeferred := carryForward(sub, lockstepExcludes, deferred)
			err := walk(fs, searchState{baseDirectory: sub, remainingWildcardDirectory: rest}, filename, nextLockstep, nextDeferred, results)
			if err != nil {
				return err
			}
		}
		return nil

	default: // stepRecursive: "**" — consider this directory AND every subdirectory
		// This directory, with "**" consumed (zero directories matched).
		nextLockstep, nextDeferred := carryForward(state.baseDirectory, lockstepExcludes, deferred)
		if err := walk(fs, searchState{baseDirectory: state.baseDirectory, remainingWildcardDirectory: rest}, filename, nextLockstep, nextDeferred, results); err != nil {
			return err
		}

		dirNames, err := fs.List(Directories, state.baseDirectory, "")
		if err != nil {
			return err
		}
		for _, dname := range dirNames {
			sub := joinPath(state.baseDirectory, dname)
			subLockstep, subDeferred := carryForward(sub, lockstepExcludes, deferred)
			// "**" still remains active at the deeper level too.
			err := walk(fs, searchState{baseDirectory: sub, remainingWildcardDirectory: state.remainingWildcardDirectory}, filename, subLockstep, subDeferred, results)
			if err != nil {
				return err
			}
		}
		return nil
	}
}

// joinPath joins a base directory and an entry name with '/', regardless of
// host path separator conventions, since all walker-internal paths are
// tracked in forward-slash form and only converted to os-native form at the
// FileSystem boundary by the caller-supplied implementation.
func joinPath(base, name string) string {
	if base == "" || base == "." {
		return name
	}
	return strings.TrimSuffix(normalizeSlashes(base), "/") + "/" + name
}

// carryForward filters lockstepExcludes and deferred down to what remains
// relevant once the walk descends into subDir: a lockstep exclude whose own
// directoryPattern matches subDir's name continues at the new depth: a
// deferred exclude keyed by subDir's normalized path is promoted into the
// lockstep set for the new depth.
func carryForward(subDir string, lockstepExcludes []*excludePlan, deferred map[string][]*excludePlan) ([]*excludePlan, map[string][]*excludePlan) {
	var next []*excludePlan
	dirName := path.Base(normalizeSlashes(subDir))
	for _, ex := range lockstepExcludes {
		if ex.matchesDirSegment(dirName) {
			next = append(next, ex)
		}
	}
	if promoted, ok := deferred[normalizeDeferredKey(subDir)]; ok {
		next = append(next, promoted...)
	}
	return next, deferred
}

func normalizeDeferredKey(p string) string {
	return strings.ToLower(trimTrailingSlash(p))
}

func excludedByAny(fullPath string, plans []*excludePlan) bool {
	for _, ex := range plans {
		if ex.excludesFile(fullPath) {
			return true
		}
	}
	return false
}
