package fsx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileAtomicCreatesAndReplaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "design.json")

	if err := WriteFileAtomic(path, []byte("first"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("second"), 0o600); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(content) != "second" {
		t.Fatalf("expected replaced content, got %q", content)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp-") {
			t.Fatalf("leftover temp file: %s", entry.Name())
		}
	}
}

func TestAppendLineLockedAppendsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history", "events.jsonl")

	if err := AppendLineLocked(path, []byte(`{"n":1}`), 0o600); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := AppendLineLocked(path, []byte(`{"n":2}`), 0o600); err != nil {
		t.Fatalf("second append: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(content) != "{\"n\":1}\n{\"n\":2}\n" {
		t.Fatalf("unexpected file content: %q", content)
	}
	if _, err := os.Stat(path + ".lock"); !os.IsNotExist(err) {
		t.Fatalf("lock file not released: %v", err)
	}
}

func TestAppendLineLockedRejectsParentTraversal(t *testing.T) {
	if err := AppendLineLocked("../outside.jsonl", []byte("{}"), 0o600); err == nil {
		t.Fatal("expected error for parent traversal path")
	}
}
