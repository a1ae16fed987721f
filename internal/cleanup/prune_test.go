package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"sweeparr/internal/logging"
	"sweeparr/internal/testsupport"
)

func TestPruneCollapsesNestedEmptyDirectories(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "show", "season", "extras"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result := NewPruner(root, logging.NewNop()).Prune(context.Background())
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %+v", result.Errors)
	}
	if len(result.Removed) != 3 {
		t.Fatalf("expected 3 removed directories, got %v", result.Removed)
	}
	if _, err := os.Stat(filepath.Join(root, "show")); !os.IsNotExist(err) {
		t.Fatal("expected the emptied tree to be gone")
	}
	if _, err := os.Stat(root); err != nil {
		t.Fatalf("expected the root to survive: %v", err)
	}
}

func TestPruneKeepsDirectoriesWithContent(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "show", "season", "episode.mkv"), 1)
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result := NewPruner(root, logging.NewNop()).Prune(context.Background())
	if len(result.Removed) != 1 || filepath.Base(result.Removed[0]) != "empty" {
		t.Fatalf("expected only the empty directory removed, got %v", result.Removed)
	}
	if _, err := os.Stat(filepath.Join(root, "show", "season", "episode.mkv")); err != nil {
		t.Fatalf("expected media file untouched: %v", err)
	}
}

func TestPruneEmptyRootSurvives(t *testing.T) {
	root := t.TempDir()

	result := NewPruner(root, logging.NewNop()).Prune(context.Background())
	if len(result.Removed) != 0 {
		t.Fatalf("expected nothing removed, got %v", result.Removed)
	}
	if _, err := os.Stat(root); err != nil {
		t.Fatalf("expected the root to survive: %v", err)
	}
}

func TestPruneMissingRootIsQuiet(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nope")

	result := NewPruner(root, logging.NewNop()).Prune(context.Background())
	if len(result.Removed) != 0 || len(result.Errors) != 0 {
		t.Fatalf("expected empty result for missing root, got %+v", result)
	}
}

func TestPruneBlankRootDoesNothing(t *testing.T) {
	result := NewPruner("   ", logging.NewNop()).Prune(context.Background())
	if len(result.Removed) != 0 || len(result.Errors) != 0 {
		t.Fatalf("expected empty result for blank root, got %+v", result)
	}
}
