package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"
)

// ErrAlreadyRunning reports that another process holds the pid file lock.
var ErrAlreadyRunning = errors.New("another compositor instance holds the pid file")

// PIDFile is a pid file held under an exclusive advisory lock for the life
// of the process.
type PIDFile struct {
	path string
	lock *flock.Flock
}

// AcquirePIDFile locks path and writes the current process id into it.
func AcquirePIDFile(path string) (*PIDFile, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("pid file path is empty")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure pid directory: %w", err)
		}
	}

	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire pid lock: %w", err)
	}
	if !ok {
		if holder, err := ReadPID(path); err == nil {
			return nil, fmt.Errorf("%w: %s (pid %d)", ErrAlreadyRunning, path, holder)
		}
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, path)
	}

	value := strconv.Itoa(unix.Getpid()) + "\n"
	if err := os.WriteFile(path, []byte(value), 0o644); err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("write pid file: %w", err)
	}
	return &PIDFile{path: path, lock: lock}, nil
}

// Path returns the pid file location.
func (p *PIDFile) Path() string {
	if p == nil {
		return ""
	}
	return p.path
}

// Release removes the pid file and drops the lock. It is safe to call on a
// nil PIDFile and more than once.
func (p *PIDFile) Release() error {
	if p == nil || p.lock == nil {
		return nil
	}
	removeErr := os.Remove(p.path)
	if errors.Is(removeErr, os.ErrNotExist) {
		removeErr = nil
	}
	unlockErr := p.lock.Unlock()
	p.lock = nil
	return errors.Join(removeErr, unlockErr)
}

// ReadPID returns the process id recorded in path.
func ReadPID(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parse pid file %s: %w", path, err)
	}
	return pid, nil
}
