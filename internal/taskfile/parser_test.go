package taskfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestParse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Taskfile.yml")
	writeFile(t, path, `
version: '3'
vars:
  BINARY: dummy
tasks:
  build:
    desc: build the binary
    cmds:
      - go build -o {{.BINARY}} .
    sources:
      - "**/*.go"
    excludes:
      - "**/*_test.go"
    generates:
      - "{{.BINARY}}"
`)

	tf, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if tf.GetVarString("BINARY") != "dummy" {
		t.Errorf("GetVarString(BINARY) = %q, want dummy", tf.GetVarString("BINARY"))
	}
	if !tf.HasTask("build") {
		t.Fatal("expected build task")
	}
	task, _ := tf.GetTask("build")
	if len(task.Sources) != 1 || task.Sources[0] != "**/*.go" {
		t.Errorf("Sources = %v", task.Sources)
	}
	if len(task.Excludes) != 1 || task.Excludes[0] != "**/*_test.go" {
		t.Errorf("Excludes = %v", task.Excludes)
	}
}

func TestTaskResolveSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.go"), "package main")
	writeFile(t, filepath.Join(dir, "util.go"), "package main")
	writeFile(t, filepath.Join(dir, "util_test.go"), "package main")

	task := Task{
		Sources:  []string{"*.go"},
		Excludes: []string{"*_test.go"},
	}

	files, err := task.ResolveSources(dir)
	if err != nil {
		t.Fatalf("ResolveSources: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2: %v", len(files), files)
	}
}

func TestTaskResolveSourcesEmpty(t *testing.T) {
	var task Task
	files, err := task.ResolveSources(t.TempDir())
	if err != nil {
		t.Fatalf("ResolveSources: %v", err)
	}
	if files != nil {
		t.Errorf("expected nil files for task with no sources, got %v", files)
	}
}

func TestFindTaskfiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Taskfile.yml"), "version: '3'\n")
	writeFile(t, filepath.Join(dir, "sub", "Taskfile.dummy.yml"), "version: '3'\n")
	writeFile(t, filepath.Join(dir, ".hidden", "Taskfile.yml"), "version: '3'\n")

	files, err := FindTaskfiles(dir)
	if err != nil {
		t.Fatalf("FindTaskfiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d taskfiles, want 2: %v", len(files), files)
	}
}

func TestHasVarAndHasVarValue(t *testing.T) {
	tf := &Taskfile{
		Vars: map[string]any{
			"DUMMY_CGO": "'0'",
			"GO_BUILD_DIR": "dist",
		},
	}

	if !tf.HasVar("_CGO") {
		t.Error("expected HasVar(_CGO) to match DUMMY_CGO")
	}
	if !tf.HasVar("_BUILD_") {
		t.Error("expected HasVar(_BUILD_) to match GO_BUILD_DIR")
	}
	if !tf.HasVarValue("_CGO", "0") {
		t.Error("expected HasVarValue(_CGO, 0) to strip quotes and match")
	}
}
