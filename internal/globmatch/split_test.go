package globmatch

import "testing"

func TestSplitFilespec(t *testing.T) {
	fs := newMemFS()
	cases := []struct {
		name                                    string
		spec                                    string
		fixedDir, wildcardDir, filename         string
	}{
		{"plain filename", "foo.txt", "", "", "foo.txt"},
		{"fixed dir no wildcard", "src/main.go", "src/", "", "main.go"},
		{"wildcard in filename only", "src/*.go", "src/", "", "*.go"},
		{"wildcard dir from start", "*/sub/file.go", "", "*/sub/", "file.go"},
		{"fixed then wildcard dir", "src/*/sub/file.go", "src/", "*/sub/", "file.go"},
		{"double star trailing", "src/**", "src/", "**/", "*.*"},
		{"double star with filename", "src/**/*.go", "src/", "**/", "*.go"},
		{"backslash separators", `src\sub\file.go`, `src\sub\`, "", "file.go"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fixedDir, wildcardDir, filename, err := SplitFilespec(fs, c.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fixedDir != c.fixedDir || wildcardDir != c.wildcardDir || filename != c.filename {
				t.Errorf("SplitFilespec(%q) = (%q, %q, %q), want (%q, %q, %q)",
					c.spec, fixedDir, wildcardDir, filename, c.fixedDir, c.wildcardDir, c.filename)
			}
		})
	}
}
