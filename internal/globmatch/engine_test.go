package globmatch

import (
	"reflect"
	"sort"
	"testing"
)

func buildTestTree() *memFS {
	fs := newMemFS()
	fs.addFile("proj/src/main.go")
	fs.addFile("proj/src/util.go")
	fs.addFile("proj/src/util_test.go")
	fs.addFile("proj/src/vendor/lib.go")
	fs.addFile("proj/src/pkg/a/a.go")
	fs.addFile("proj/src/pkg/a/a_test.go")
	fs.addFile("proj/src/pkg/b/b.go")
	fs.addFile("proj/README.md")
	return fs
}

func TestGetFilesLiteralInclude(t *testing.T) {
	ResetCache()
	fs := buildTestTree()
	got, err := GetFiles(fs, "", "proj/README.md", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "proj/README.md" {
		t.Errorf("got %v, want [proj/README.md]", got)
	}
}

func TestGetFilesLiteralIncludeExcluded(t *testing.T) {
	ResetCache()
	fs := buildTestTree()
	got, err := GetFiles(fs, "", "proj/README.md", []string{"proj/README.md"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestGetFilesSingleStar(t *testing.T) {
	ResetCache()
	fs := buildTestTree()
	got, err := GetFiles(fs, "", "proj/src/*.go", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"proj/src/main.go", "proj/src/util.go", "proj/src/util_test.go"}
	assertSameSet(t, got, want)
}

func TestGetFilesDoubleStarRecursive(t *testing.T) {
	ResetCache()
	fs := buildTestTree()
	got, err := GetFiles(fs, "", "proj/src/**/*.go", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"proj/src/main.go",
		"proj/src/util.go",
		"proj/src/util_test.go",
		"proj/src/vendor/lib.go",
		"proj/src/pkg/a/a.go",
		"proj/src/pkg/a/a_test.go",
		"proj/src/pkg/b/b.go",
	}
	assertSameSet(t, got, want)
}

func TestGetFilesWithExclude(t *testing.T) {
	ResetCache()
	fs := buildTestTree()
	got, err := GetFiles(fs, "", "proj/src/**/*.go", []string{"proj/src/**/*_test.go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"proj/src/main.go",
		"proj/src/util.go",
		"proj/src/vendor/lib.go",
		"proj/src/pkg/a/a.go",
		"proj/src/pkg/b/b.go",
	}
	assertSameSet(t, got, want)
}

func TestGetFilesWithExcludeUnderProjectDirectory(t *testing.T) {
	// Regression: an exclude filespec must be rooted against projectDirectory
	// the same way the include is, not matched against its own bare fixedDir.
	ResetCache()
	fs := buildTestTree()
	got, err := GetFiles(fs, "proj", "src/**/*.go", []string{"src/**/*_test.go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"src/main.go",
		"src/util.go",
		"src/vendor/lib.go",
		"src/pkg/a/a.go",
		"src/pkg/b/b.go",
	}
	assertSameSet(t, got, want)
}

func TestGetFilesExcludeDominance(t *testing.T) {
	// A "vendor/**" exclude one level below a "**/*.go" include must remove
	// every file in that subtree, even though its base directory is deeper
	// than the include's.
	ResetCache()
	fs := buildTestTree()
	got, err := GetFiles(fs, "", "proj/src/**/*.go", []string{"proj/src/vendor/**"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range got {
		if p == "proj/src/vendor/lib.go" {
			t.Errorf("expected proj/src/vendor/lib.go to be excluded, got %v", got)
		}
	}
}

func TestGetFilesMissingDirectory(t *testing.T) {
	ResetCache()
	fs := buildTestTree()
	got, err := GetFiles(fs, "", "proj/nonexistent/*.go", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty for missing directory", got)
	}
}

func TestGetFilesIllegalDegradesToVerbatim(t *testing.T) {
	ResetCache()
	fs := buildTestTree()
	spec := "proj/a**b/*.go"
	got, err := GetFiles(fs, "", spec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != spec {
		t.Errorf("got %v, want verbatim [%s]", got, spec)
	}
}

func TestGetFilesShortCircuitOnIdenticalExclude(t *testing.T) {
	ResetCache()
	fs := buildTestTree()
	got, err := GetFiles(fs, "", "proj/src/*.go", []string{"proj/src/*.go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty (identical include/exclude short-circuits)", got)
	}
}

func TestGetFilesCacheReturnsIndependentCopies(t *testing.T) {
	ResetCache()
	fs := buildTestTree()
	a, err := GetFiles(fs, "", "proj/src/*.go", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a[0] = "mutated"
	b, err := GetFiles(fs, "", "proj/src/*.go", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range b {
		if p == "mutated" {
			t.Errorf("cache leaked a mutation from a previous caller's slice: %v", b)
		}
	}
}

func TestHasWildcards(t *testing.T) {
	if !HasWildcards("*.go") {
		t.Errorf("expected true")
	}
	if HasWildcards("main.go") {
		t.Errorf("expected false")
	}
}

func TestFileMatch(t *testing.T) {
	fs := buildTestTree()
	m := FileMatch(fs, "proj/src/*.go", "proj/src/main.go")
	if !m.IsLegalFileSpec || !m.IsMatch {
		t.Errorf("expected a legal match, got %+v", m)
	}
	m2 := FileMatch(fs, "proj/src/*.go", "proj/src/pkg/a/a.go")
	if m2.IsMatch {
		t.Errorf("did not expect a match across directory boundaries: %+v", m2)
	}
}

func assertSameSet(t *testing.T, got, want []string) {
	t.Helper()
	g := append([]string(nil), got...)
	w := append([]string(nil), want...)
	sort.Strings(g)
	sort.Strings(w)
	if !reflect.DeepEqual(g, w) {
		t.Errorf("got %v, want %v", g, w)
	}
}
