package filex

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir_CreatesNested(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b", "c")

	got, err := EnsureDir(target)
	if err != nil {
		t.Fatalf("EnsureDir error: %v", err)
	}
	if got != target {
		t.Fatalf("expected %q, got %q", target, got)
	}

	info, err := os.Stat(got)
	if err != nil {
		t.Fatalf("stat error: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected a directory at %q", got)
	}
}

func TestEnsureDir_ExistingIsFine(t *testing.T) {
	base := t.TempDir()

	if _, err := EnsureDir(base); err != nil {
		t.Fatalf("EnsureDir on existing dir: %v", err)
	}
}
