// Package filelock writes output files under an advisory lock so that two
// hevcparam processes pointed at the same --out path never interleave or
// leave a half-written fingerprint behind.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockSuffix is appended to a target path to name its lock file.
const LockSuffix = ".lock"

// Lock is an exclusive advisory lock on a lock file.
type Lock struct {
	flock *flock.Flock
	path  string
}

// New returns an unlocked Lock on path.
func New(path string) *Lock {
	return &Lock{flock: flock.New(path), path: path}
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Lock blocks until the lock is held.
func (l *Lock) Lock() error {
	if err := l.flock.Lock(); err != nil {
		return fmt.Errorf("acquire lock %s: %w", l.path, err)
	}
	return nil
}

// Unlock releases the lock.
func (l *Lock) Unlock() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", l.path, err)
	}
	return nil
}

// WriteFile replaces path with data while holding path+LockSuffix. Readers
// see either the old content or the new content, never a mix.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	lock := New(path + LockSuffix)
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	return writeAtomic(path, data, perm)
}

// writeAtomic writes to a temp file in the target directory and renames it
// over path. The temp file must live on the same filesystem for the rename
// to be atomic.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	renamed = true
	return nil
}
