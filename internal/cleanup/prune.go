package cleanup

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"sweeparr/internal/logging"
)

// PruneResult contains the outcome of an empty-directory sweep.
type PruneResult struct {
	Removed []string
	Errors  []PruneError
}

// PruneError pairs a directory path with the error it produced.
type PruneError struct {
	Path  string
	Error error
}

// Pruner removes empty directories beneath the media root after episode
// files have been deleted. The root itself is never removed.
type Pruner struct {
	root   string
	logger *slog.Logger
}

// NewPruner builds a Pruner for the given media root.
func NewPruner(root string, logger *slog.Logger) *Pruner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pruner{root: root, logger: logger}
}

// Prune walks the media root once, then visits the collected directories
// deepest first so a parent emptied by removing its children is caught in the
// same pass. Errors on individual directories are recorded and the sweep
// continues.
func (p *Pruner) Prune(ctx context.Context) PruneResult {
	result := PruneResult{}

	root := strings.TrimSpace(p.root)
	if root == "" {
		return result
	}

	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if !os.IsNotExist(err) {
				result.Errors = append(result.Errors, PruneError{Path: path, Error: err})
			}
			return nil
		}
		if !d.IsDir() || path == root {
			return nil
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		result.Errors = append(result.Errors, PruneError{Path: root, Error: err})
		return result
	}

	for i := len(dirs) - 1; i >= 0; i-- {
		if ctx.Err() != nil {
			return result
		}
		dir := dirs[i]
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			result.Errors = append(result.Errors, PruneError{Path: dir, Error: err})
			p.logger.Warn("failed to inspect directory",
				logging.String("path", dir),
				logging.Error(err),
			)
			continue
		}
		if len(entries) > 0 {
			continue
		}
		if err := os.Remove(dir); err != nil {
			result.Errors = append(result.Errors, PruneError{Path: dir, Error: err})
			p.logger.Warn("failed to remove empty directory",
				logging.String("path", dir),
				logging.Error(err),
			)
			continue
		}
		result.Removed = append(result.Removed, dir)
		p.logger.Info("removed empty directory", logging.String("path", dir))
	}

	return result
}
