package globmatch

import "testing"

func TestCompileRegexBasic(t *testing.T) {
	p, err := CompileRegex("src/", "", "*.go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Regex.MatchString("src/main.go") {
		t.Errorf("expected match for src/main.go")
	}
	if p.Regex.MatchString("src/sub/main.go") {
		t.Errorf("did not expect match across a directory boundary")
	}
	if p.NeedsRecursion {
		t.Errorf("no wildcardDir should not need recursion")
	}
}

func TestCompileRegexDoubleStar(t *testing.T) {
	p, err := CompileRegex("src/", "**/", "*.go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := map[string]bool{
		"src/main.go":         true,
		"src/a/main.go":       true,
		"src/a/b/c/main.go":   true,
		"other/main.go":       false,
		"src/main.txt":        false,
	}
	for input, want := range cases {
		if got := p.Regex.MatchString(input); got != want {
			t.Errorf("MatchString(%q) = %v, want %v", input, got, want)
		}
	}
	if !p.NeedsRecursion {
		t.Errorf("'**' wildcardDir should need recursion")
	}
}

func TestCompileRegexDoubleStarCollapse(t *testing.T) {
	a, err := CompileRegex("src/", "**/**/", "*.go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := CompileRegex("src/", "**/", "*.go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Regex.String() != b.Regex.String() {
		t.Errorf("expected '**/**/'' to collapse to the same regex as '**/', got %q vs %q", a.Regex.String(), b.Regex.String())
	}
}

func TestCompileRegexTrailingDot(t *testing.T) {
	p, err := CompileRegex("", "", "makefile.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Regex.MatchString("makefile") {
		t.Errorf("trailing-dot filename should match the extensionless name")
	}
	if p.Regex.MatchString("makefile.txt") {
		t.Errorf("trailing-dot filename should not match a name with an extension")
	}
}

func TestCompileRegexIllegal(t *testing.T) {
	cases := []struct{ fixedDir, wildcardDir, filename string }{
		{"src/", "", "a**b"},
		{"a../", "", "x"},
		{"", "", "foo...bar"},
		{"src/a:b/", "", "x"},
	}
	for _, c := range cases {
		if _, err := CompileRegex(c.fixedDir, c.wildcardDir, c.filename); err == nil {
			t.Errorf("CompileRegex(%q, %q, %q): expected illegal filespec error", c.fixedDir, c.wildcardDir, c.filename)
		} else if !IsIllegalFilespec(err) {
			t.Errorf("expected an IllegalFilespecError, got %v", err)
		}
	}
}

func TestCompileRegexCaseInsensitive(t *testing.T) {
	p, err := CompileRegex("SRC/", "", "*.GO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Regex.MatchString("src/main.go") {
		t.Errorf("expected case-insensitive match")
	}
}
