// Package pid guards one runtime per saved directory through a pidfile.
package pid

import (
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"codeberg.org/mutker/gamectl/internal/errors"
)

const pidFile = "gamectl.pid"

// Path returns the pidfile location inside the saved directory.
func Path(savedDir string) string {
	return filepath.Join(savedDir, pidFile)
}

// Acquire writes the current process ID to the pidfile at path. A pidfile
// naming a live process means another runtime owns this saved directory;
// a stale or unreadable pidfile is overwritten.
func Acquire(path string) error {
	errFactory := errors.New()

	if _, err := os.Stat(path); err == nil {
		bytes, err := os.ReadFile(path)
		if err != nil {
			return errFactory.Wrap(errors.ErrInternal, err)
		}

		owner, err := strconv.Atoi(string(bytes))
		if err == nil && processAlive(owner) {
			return errFactory.WithData(errors.ErrAlreadyRunning, owner)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o600); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

// Release removes the pidfile. A missing file is not an error.
func Release(path string) error {
	errFactory := errors.New()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(path); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	return process.Signal(syscall.Signal(0)) == nil
}
