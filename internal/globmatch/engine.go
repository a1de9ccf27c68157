// Package globmatch implements the file-glob matching and enumeration engine
// used to evaluate item specifications: a filespec with *, ? and **
// wildcards plus an optional set of exclude filespecs, resolved against a
// pluggable filesystem interface. It is the file-selection primitive other
// packages build on when they need to turn a glob-style pattern into a
// concrete, ordered list of paths — most notably internal/taskfile's
// sources/excludes resolution and the manifest file-collection rules.
package globmatch

import (
	"path/filepath"
	"sort"
	"strings"
)

// MatchResult is the outcome of testing one candidate path against one
// filespec (§5, §6 FileMatch).
type MatchResult struct {
	IsLegalFileSpec       bool
	IsMatch               bool
	IsFileSpecRecursive   bool
	FixedDirectoryPart    string
	WildcardDirectoryPart string
	FilenamePart          string
}

// FileSpecInfo describes how a filespec decomposes and compiles, independent
// of any candidate path or filesystem walk.
type FileSpecInfo struct {
	FixedDirectory    string
	WildcardDirectory string
	Filename          string
	RegexString       string
	NeedsRecursion    bool
	IsLegal           bool
}

// HasWildcards reports whether spec contains any of the glob metacharacters
// this engine understands ('*' or '?').
func HasWildcards(spec string) bool {
	return strings.ContainsAny(spec, "*?")
}

// HasWildcardsSemicolonItemOrPropertyReferences reports whether spec
// contains a glob metacharacter, a list separator (';'), or an unresolved
// item/property reference token ("@(" / "$("). Callers use this to decide
// whether a raw manifest value needs this engine at all or can be treated as
// a single literal path.
func HasWildcardsSemicolonItemOrPropertyReferences(spec string) bool {
	if HasWildcards(spec) {
		return true
	}
	return strings.Contains(spec, ";") || strings.Contains(spec, "@(") || strings.Contains(spec, "$(")
}

// GetFileSpecInfo splits and compiles spec without touching the filesystem
// beyond the short-name resolution SplitFilespec itself requires.
func GetFileSpecInfo(fs FileSystem, spec string) FileSpecInfo {
	fixedDir, wildcardDir, filename, err := SplitFilespec(fs, spec)
	if err != nil {
		return FileSpecInfo{IsLegal: false}
	}
	compiled, err := CompileRegex(fixedDir, wildcardDir, filename)
	if err != nil {
		return FileSpecInfo{
			FixedDirectory:    fixedDir,
			WildcardDirectory: wildcardDir,
			Filename:          filename,
			IsLegal:           false,
		}
	}
	return FileSpecInfo{
		FixedDirectory:    fixedDir,
		WildcardDirectory: wildcardDir,
		Filename:          filename,
		RegexString:       compiled.Regex.String(),
		NeedsRecursion:    compiled.NeedsRecursion,
		IsLegal:           true,
	}
}

// FileMatch tests a single candidate path against spec, short-name-resolving
// the candidate first so that a filespec written with long directory names
// still matches a candidate reported with 8.3-style short names (§4.4, §6).
func FileMatch(fs FileSystem, spec, candidatePath string) MatchResult {
	fixedDir, wildcardDir, filename, err := SplitFilespec(fs, spec)
	if err != nil {
		return MatchResult{IsLegalFileSpec: false}
	}
	compiled, err := CompileRegex(fixedDir, wildcardDir, filename)
	if err != nil {
		return MatchResult{
			IsLegalFileSpec:       false,
			FixedDirectoryPart:    fixedDir,
			WildcardDirectoryPart: wildcardDir,
			FilenamePart:          filename,
		}
	}

	resolvedCandidate, err := ResolveShortNames(fs, candidatePath)
	if err != nil {
		resolvedCandidate = candidatePath
	}

	isMatch := compiled.Regex.MatchString(toRegexPath(normalizeSlashes(resolvedCandidate)))
	return MatchResult{
		IsLegalFileSpec:       true,
		IsMatch:               isMatch,
		IsFileSpecRecursive:   compiled.NeedsRecursion,
		FixedDirectoryPart:    fixedDir,
		WildcardDirectoryPart: wildcardDir,
		FilenamePart:          filename,
	}
}

// GetFiles evaluates an include filespec against a set of exclude filespecs,
// rooted at projectDirectory, and returns the matching paths relative to
// projectDirectory (or as given, for absolute includes). It implements §6's
// contract in full, including the degrade-gracefully rules of §7: an illegal
// include or a filesystem error during the walk both fall back to returning
// the include filespec verbatim rather than surfacing an error, matching the
// legacy behavior callers of a build-item evaluator depend on.
func GetFiles(fs FileSystem, projectDirectory, includeFilespec string, excludeFilespecs []string) ([]string, error) {
	key := cacheKey(projectDirectory, includeFilespec, excludeFilespecs)
	return withCache(key, func() ([]string, error) {
		return computeFiles(fs, projectDirectory, includeFilespec, excludeFilespecs)
	})
}

func computeFiles(fs FileSystem, projectDirectory, includeFilespec string, excludeFilespecs []string) ([]string, error) {
	if !HasWildcards(includeFilespec) {
		return literalInclude(fs, projectDirectory, includeFilespec, excludeFilespecs)
	}

	for _, ex := range excludeFilespecs {
		if shortCircuits(includeFilespec, ex) {
			return []string{}, nil
		}
	}

	fixedDir, wildcardDir, filename, err := SplitFilespec(fs, includeFilespec)
	if err != nil {
		// Illegal filespec: degrade to verbatim passthrough (§7).
		return []string{includeFilespec}, nil
	}
	if _, err := CompileRegex(fixedDir, wildcardDir, filename); err != nil {
		return []string{includeFilespec}, nil
	}

	baseDir := joinBase(projectDirectory, fixedDir)
	if !fs.DirectoryExists(baseDir) {
		return []string{}, nil
	}

	plans := make([]*excludePlan, 0, len(excludeFilespecs))
	for _, ex := range excludeFilespecs {
		plan, err := buildExcludePlan(fs, projectDirectory, ex)
		if err != nil {
			continue
		}
		plans = append(plans, plan)
	}

	// Collapse consecutive "**" segments the same way the regex compiler
	// does, so the walker never explores the same depth through two
	// redundant "**" branches and double-counts a match.
	walkWildcardDir := strings.TrimSuffix(collapseDoubleStarRuns(normalizeSlashes(wildcardDir)), "/")
	var results []string
	state := searchState{baseDirectory: baseDir, remainingWildcardDirectory: walkWildcardDir}
	if err := walk(fs, state, filename, plans, map[string][]*excludePlan{}, &results); err != nil {
		// Filesystem error mid-walk: degrade to verbatim passthrough (§7).
		return []string{includeFilespec}, nil
	}

	relative := projectDirectory != "" && !isAbsPath(fixedDir)
	out := make([]string, 0, len(results))
	for _, r := range results {
		p := r
		if relative {
			p = stripProjectDirectory(filepath.FromSlash(r), projectDirectory)
		}
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

// literalInclude handles an include filespec with no wildcards: §6 says the
// result is that single path, unless an exclude removes it.
func literalInclude(fs FileSystem, projectDirectory, includeFilespec string, excludeFilespecs []string) ([]string, error) {
	for _, ex := range excludeFilespecs {
		if !HasWildcards(ex) {
			if pathsEqual(ex, includeFilespec) {
				return []string{}, nil
			}
			continue
		}
		m := FileMatch(fs, ex, includeFilespec)
		if m.IsLegalFileSpec && m.IsMatch {
			return []string{}, nil
		}
	}
	return []string{includeFilespec}, nil
}
