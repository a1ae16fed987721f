package daemon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning reports that another process holds the run lock.
var ErrAlreadyRunning = errors.New("another sweeparr instance is already running")

// RunLock enforces single-instance execution across processes. Both one-shot
// runs and the watch daemon take it so a scheduled run and a manual run never
// overlap.
type RunLock struct {
	path string
	lock *flock.Flock
}

// NewRunLock builds a lock backed by a file in the log directory.
func NewRunLock(logDir string) *RunLock {
	path := filepath.Join(logDir, "sweeparr.lock")
	return &RunLock{path: path, lock: flock.New(path)}
}

// Acquire takes the lock without blocking. It fails with ErrAlreadyRunning
// when another process holds it.
func (l *RunLock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create lock directory: %w", err)
	}
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return ErrAlreadyRunning
	}
	return nil
}

// Release gives the lock back.
func (l *RunLock) Release() error {
	return l.lock.Unlock()
}

// Path returns the lock file location.
func (l *RunLock) Path() string {
	return l.path
}
