package globmatch

// excludePlan is the compiled, ready-to-apply form of one exclude filespec
// paired against a particular include. Per §4.7, an exclude can in principle
// be pruned from the walk early (dropped, deferred until a specific
// subdirectory, or promoted to travel alongside the include at every
// depth) as a performance optimization. Correctness of the final result
// does not depend on getting that pruning exactly right: excludesFile is
// always re-checked against the literal candidate path before a match is
// accepted, so a plan that is carried further than strictly necessary only
// costs extra regex evaluations, never a wrong answer. matchesDirSegment
// therefore conservatively reports true for every plan and every
// subdirectory, keeping every exclude alive for the whole walk; the deferred
// map exists so the walker's signature matches the full §4.6 design and can
// later host a stricter, prefix-based pruning pass without changing the
// walker itself.
type excludePlan struct {
	regex   *CompiledPattern
	literal string // set instead of regex when the exclude filespec was illegal: compared by exact path equality
}

func (p *excludePlan) matchesDirSegment(string) bool {
	return true
}

func (p *excludePlan) excludesFile(candidatePath string) bool {
	if p.literal != "" {
		return pathsEqual(p.literal, candidatePath)
	}
	if p.regex == nil {
		return false
	}
	return p.regex.Regex.MatchString(toRegexPath(candidatePath))
}

// buildExcludePlan compiles a single exclude filespec into an excludePlan.
// projectDirectory must be the same value the include was rooted with
// (engine.go's joinBase(projectDirectory, fixedDir)): excludesFile is tested
// against the full candidate path the walker builds from that same root, so
// the exclude's own fixedDir has to be re-rooted through joinBase too, or an
// exclude whose fixedDir text doesn't happen to equal the include's base
// would never match anything.
//
// A structurally illegal exclude filespec degrades to a literal-path
// comparison (§7: excludes never hard-error, they just become a plain path
// to subtract if it happens to appear in the results); that literal is
// rooted the same way for the same reason.
func buildExcludePlan(fs FileSystem, projectDirectory, excludeFilespec string) (*excludePlan, error) {
	fixedDir, wildcardDir, filename, err := SplitFilespec(fs, excludeFilespec)
	if err != nil {
		return &excludePlan{literal: joinBase(projectDirectory, excludeFilespec)}, nil
	}
	// joinBase drops the trailing separator; the compiled regex expects the
	// fixed part to end in one, exactly as the walker's candidate paths do.
	rootedFixedDir := trimTrailingSlash(joinBase(projectDirectory, fixedDir)) + "/"
	compiled, err := CompileRegex(rootedFixedDir, wildcardDir, filename)
	if err != nil {
		return &excludePlan{literal: joinBase(projectDirectory, excludeFilespec)}, nil
	}
	return &excludePlan{regex: compiled}, nil
}

// shortCircuits reports the §4.7 rule that an exclude identical to the
// include (compared by pathsEqual: separator-, trailing-slash- and
// case-insensitive, with no short-name resolution)
// empties the result outright rather than running the walk at all.
func shortCircuits(includeFilespec, excludeFilespec string) bool {
	return pathsEqual(includeFilespec, excludeFilespec)
}
