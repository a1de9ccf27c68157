package globmatch

import (
	"fmt"
	"strings"
)

// ResolveShortNames replaces any path segment containing '~' with the single
// filesystem entry its pattern matches, probing fs one segment at a time.
// UNC roots (\\server\share\) and drive-letter roots (C:\) are kept intact
// as atomic leading segments. If a segment's probe finds no match, the
// remainder of the path is kept verbatim rather than erroring.
//
// It is a programmer error to call this with a path that contains '*' or
// '?' outside of a '~' segment's own matching; dir itself (a fixedDir) must
// never contain general wildcards.
func ResolveShortNames(fs FileSystem, dir string) (string, error) {
	if !strings.Contains(dir, "~") {
		return dir, nil
	}
	if strings.ContainsAny(stripTildeSegments(dir), "*?") {
		return "", fmt.Errorf("globmatch: ResolveShortNames called with wildcards outside '~' segments: %q", dir)
	}

	norm := normalizeSlashes(dir)
	trailingSlash := strings.HasSuffix(norm, "/")

	root, rest := splitRoot(norm)
	segments := strings.Split(strings.Trim(rest, "/"), "/")

	accumulated := root
	result := []string{}
	if root != "" {
		result = append(result, strings.TrimSuffix(root, "/"))
	}

	stop := false
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if stop || !strings.Contains(seg, "~") {
			result = append(result, seg)
			if !stop {
				accumulated = joinSlash(accumulated, seg)
			}
			continue
		}

		probeDir := accumulated
		if probeDir == "" {
			probeDir = "."
		}
		entries, err := fs.List(Both, probeDir, seg)
		if err != nil {
			return "", err
		}
		if len(entries) == 0 {
			// No match: keep this and all remaining segments verbatim.
			result = append(result, seg)
			stop = true
			continue
		}
		result = append(result, entries[0])
		accumulated = joinSlash(accumulated, entries[0])
	}

	out := strings.Join(result, "/")
	if trailingSlash && !strings.HasSuffix(out, "/") {
		out += "/"
	}
	return out, nil
}

// stripTildeSegments removes path segments containing '~' so wildcard
// legality can be checked on the rest of the path.
func stripTildeSegments(dir string) string {
	parts := strings.Split(normalizeSlashes(dir), "/")
	kept := parts[:0]
	for _, p := range parts {
		if strings.Contains(p, "~") {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, "/")
}

// splitRoot peels off a UNC (//server/share/) or drive-letter (C:/) root,
// returning it (with trailing slash, or "" if none) and the remainder.
func splitRoot(norm string) (root, rest string) {
	if strings.HasPrefix(norm, "//") {
		trimmed := strings.TrimPrefix(norm, "//")
		parts := strings.SplitN(trimmed, "/", 3)
		switch len(parts) {
		case 0, 1:
			return "//" + trimmed, ""
		case 2:
			return "//" + parts[0] + "/" + parts[1] + "/", ""
		default:
			return "//" + parts[0] + "/" + parts[1] + "/", parts[2]
		}
	}
	if len(norm) >= 2 && norm[1] == ':' {
		root = norm[:2] + "/"
		rest = strings.TrimPrefix(norm[2:], "/")
		return root, rest
	}
	return "", norm
}

func joinSlash(a, b string) string {
	if a == "" {
		return b
	}
	return strings.TrimSuffix(a, "/") + "/" + b
}
