package globmatch

import (
	"fmt"
	"regexp"
	"strings"
)

// IllegalFilespecError marks a structural violation of filespec syntax
// (§3 invariants, §4.5, §7). Public entry points degrade by returning the
// offending input verbatim rather than propagating this as a hard error.
type IllegalFilespecError struct {
	Reason string
}

func (e *IllegalFilespecError) Error() string {
	return "illegal filespec: " + e.Reason
}

func illegal(format string, args ...any) error {
	return &IllegalFilespecError{Reason: fmt.Sprintf(format, args...)}
}

// IsIllegalFilespec reports whether err is an IllegalFilespecError.
func IsIllegalFilespec(err error) bool {
	_, ok := err.(*IllegalFilespecError)
	return ok
}

// reservedTag is a marker reserved for internal use. It contains a NUL byte,
// so it never appears in a legal filespec; if it does appear in caller
// input, the filespec is declared illegal. The compiler itself translates
// each segment directly (literal runs through regexp.QuoteMeta) and does not
// stage tokens through this marker.
const reservedTag = "\x00globmatch\x00"

// CompiledPattern is the output of the regex compiler: a case-insensitive,
// anchored regex with named groups FIXEDDIR / WILDCARDDIR / FILENAME, plus
// whether the originating wildcardDir requires recursive directory descent.
type CompiledPattern struct {
	Regex          *regexp.Regexp
	NeedsRecursion bool
}

// CompileRegex translates a split filespec into a CompiledPattern following
// the rules of §4.5, or returns an *IllegalFilespecError.
func CompileRegex(fixedDir, wildcardDir, filename string) (*CompiledPattern, error) {
	full := fixedDir + wildcardDir + filename
	if strings.Contains(full, reservedTag) {
		return nil, illegal("filespec contains a reserved internal marker")
	}
	if strings.Contains(full, "...") {
		return nil, illegal("filespec contains '...'")
	}
	if idx := strings.IndexByte(full, ':'); idx >= 0 && idx != 1 {
		return nil, illegal("colon only legal in drive-letter position (index 1)")
	}
	if strings.Contains(fixedDir, "..") {
		return nil, illegal("fixed directory may not contain '..'")
	}
	if strings.Contains(wildcardDir, "..") {
		return nil, illegal("wildcard directory may not contain '..'")
	}

	// Rule 2: trailing-dot filename convention ("foo." matches "foo").
	effectiveFilename := filename
	trailingDot := filename != "." && strings.HasSuffix(filename, ".")
	if trailingDot {
		effectiveFilename = filename[:len(filename)-1]
	}
	if strings.Contains(effectiveFilename, "**") {
		return nil, illegal("'**' may only appear as a whole directory segment")
	}

	// Rule 3/4: normalize separators, preserving a UNC prefix on fixedDir.
	uncPrefix := false
	fd := fixedDir
	if strings.HasPrefix(normalizeSlashes(fd), "//") {
		uncPrefix = true
		fd = normalizeSlashes(fd)[2:]
	} else {
		fd = normalizeSlashes(fd)
	}
	wd := normalizeSlashes(wildcardDir)

	// Rule 5: collapse identity redundancies to a fixed point.
	fd = collapseDotSlashes(fd)
	wd = collapseDotSlashes(wd)

	// Rule 6: collapse **/** -> **.
	wd = collapseDoubleStarRuns(wd)

	if err := validateDoubleStarSegments(wd); err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("^")
	if uncPrefix {
		b.WriteString(`\\\\`)
	}
	b.WriteString("(?P<FIXEDDIR>")
	b.WriteString(regexp.QuoteMeta(fd))
	b.WriteString(")")

	b.WriteString("(?P<WILDCARDDIR>")
	b.WriteString(compileWildcardDirBody(wd))
	b.WriteString(")")

	b.WriteString("(?P<FILENAME>")
	b.WriteString(compileFilenameBody(effectiveFilename, trailingDot))
	b.WriteString(")")
	b.WriteString("$")

	re, err := regexp.Compile("(?i)" + b.String())
	if err != nil {
		return nil, fmt.Errorf("globmatch: internal regex compile failure for %q: %w", full, err)
	}
	return &CompiledPattern{Regex: re, NeedsRecursion: wildcardDir != ""}, nil
}

// collapseDotSlashes iteratively applies the identity reductions of rule 5
// until a fixed point: "/./" -> "/", "//" -> "/", a leading "./" is dropped,
// and a trailing "/." is dropped.
func collapseDotSlashes(s string) string {
	for {
		next := strings.ReplaceAll(s, "/./", "/")
		next = strings.ReplaceAll(next, "//", "/")
		if next == s {
			break
		}
		s = next
	}
	s = strings.TrimPrefix(s, "./")
	s = strings.TrimSuffix(s, "/.")
	return s
}

// collapseDoubleStarRuns repeatedly merges consecutive "**" segments into a
// single "**" segment.
func collapseDoubleStarRuns(wd string) string {
	if wd == "" {
		return wd
	}
	trailingSlash := strings.HasSuffix(wd, "/")
	segs := strings.Split(strings.TrimSuffix(wd, "/"), "/")
	out := segs[:0]
	for _, s := range segs {
		if s == "**" && len(out) > 0 && out[len(out)-1] == "**" {
			continue
		}
		out = append(out, s)
	}
	joined := strings.Join(out, "/")
	if joined != "" && trailingSlash {
		joined += "/"
	}
	return joined
}

// validateDoubleStarSegments enforces that "**" only ever appears as an
// entire path segment (rule 8); "a**b/" or similar is illegal.
func validateDoubleStarSegments(wd string) error {
	if wd == "" {
		return nil
	}
	for _, seg := range strings.Split(strings.TrimSuffix(wd, "/"), "/") {
		if seg == "" {
			continue
		}
		if strings.Contains(seg, "**") && seg != "**" {
			return illegal("'**' may only appear as a whole directory segment, found %q", seg)
		}
	}
	return nil
}

// compileWildcardDirBody renders the WILDCARDDIR capture group body. Every
// "**" segment (whether the left-dirs leading case or an interior
// separator-framed middle-dirs case) compiles to the same "zero or more
// directory segments" regex fragment; the distinction in §4.5/§4.6 between
// "left-dirs" and "middle-dirs" only matters to the walker's step algorithm,
// not to the shape of the regex.
func compileWildcardDirBody(wd string) string {
	if wd == "" {
		return ""
	}
	trimmed := strings.TrimSuffix(wd, "/")
	if trimmed == "" {
		return ""
	}
	var b strings.Builder
	for _, seg := range strings.Split(trimmed, "/") {
		if seg == "**" {
			b.WriteString(`(?:[^/]+/)*`)
			continue
		}
		b.WriteString(translateGlobSegment(seg, "[^/]*", "[^/]"))
		b.WriteString("/")
	}
	return b.String()
}

// compileFilenameBody renders the FILENAME capture group body. When
// trailingDot is set, '*'/'?' are translated to non-dot classes so that,
// combined with the already-dropped trailing '.', the pattern only matches
// extensionless names (rule 2).
func compileFilenameBody(name string, trailingDot bool) string {
	if trailingDot {
		return translateGlobSegment(name, "[^./]*", "[^./]")
	}
	return translateGlobSegment(name, "[^/]*", "[^/]")
}

// translateGlobSegment converts a single path segment's '*'/'?' wildcards
// into the supplied regex character classes, escaping all literal runs with
// regexp.QuoteMeta so they can't be misread as regex metacharacters.
func translateGlobSegment(seg, starClass, qClass string) string {
	var b strings.Builder
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			b.WriteString(regexp.QuoteMeta(lit.String()))
			lit.Reset()
		}
	}
	for _, r := range seg {
		switch r {
		case '*':
			flush()
			b.WriteString(starClass)
		case '?':
			flush()
			b.WriteString(qClass)
		default:
			lit.WriteRune(r)
		}
	}
	flush()
	return b.String()
}
