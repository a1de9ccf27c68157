package globmatch

import "strings"

// SplitFilespec decomposes a filespec into its fixedDir / wildcardDir /
// filename parts per §4.3. fixedDir has any '~' segments resolved against fs
// before being returned.
func SplitFilespec(fs FileSystem, filespec string) (fixedDir, wildcardDir, filename string, err error) {
	lastSep := lastIndexOfAny(filespec, "/\\")
	firstWild := strings.IndexAny(filespec, "*?")

	switch {
	case lastSep == -1:
		// Case 1: no separator.
		fixedDir, wildcardDir, filename = "", "", filespec
	case firstWild == -1 || firstWild > lastSep:
		// Case 2: no wildcard, or first wildcard is in the filename.
		fixedDir, wildcardDir, filename = filespec[:lastSep+1], "", filespec[lastSep+1:]
	default:
		// Wildcard appears before the last separator.
		sepBeforeWild := lastIndexOfAnyBefore(filespec, "/\\", firstWild)
		if sepBeforeWild == -1 {
			// Case 3: wildcard dir starts at the beginning of the filespec.
			fixedDir, wildcardDir, filename = "", filespec[:lastSep+1], filespec[lastSep+1:]
		} else {
			// Case 4: both a fixed prefix and a wildcard directory portion.
			fixedDir = filespec[:sepBeforeWild+1]
			wildcardDir = filespec[sepBeforeWild+1 : lastSep+1]
			filename = filespec[lastSep+1:]
		}
	}

	if filename == "**" {
		wildcardDir += "**/"
		filename = "*.*"
	}

	fixedDir, err = ResolveShortNames(fs, fixedDir)
	if err != nil {
		return "", "", "", err
	}
	return fixedDir, wildcardDir, filename, nil
}

func lastIndexOfAny(s, chars string) int {
	idx := -1
	for _, c := range chars {
		if i := strings.LastIndexByte(s, byte(c)); i > idx {
			idx = i
		}
	}
	return idx
}

// lastIndexOfAnyBefore finds the last occurrence of any char in chars at a
// position strictly less than before.
func lastIndexOfAnyBefore(s, chars string, before int) int {
	if before <= 0 {
		return -1
	}
	idx := -1
	for i := 0; i < before; i++ {
		if strings.IndexByte(chars, s[i]) >= 0 && i > idx {
			idx = i
		}
	}
	return idx
}
