package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRepoRootContainsModuleFile(t *testing.T) {
	root := RepoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod at repo root %s: %v", root, err)
	}
}

func TestWriteAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "file.txt")
	WriteFile(t, path, []byte("payload"))
	if got := string(MustReadFile(t, path)); got != "payload" {
		t.Fatalf("unexpected content %q", got)
	}
}
