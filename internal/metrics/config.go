package metrics

import (
	"path/filepath"

	"codeberg.org/mutker/gamectl/internal/errors"
)

const (
	defaultDirPerm  = 0o755
	historyFileName = "history.db"
)

// Config selects whether snapshots are persisted and where.
type Config struct {
	Enabled bool
	DBPath  string
}

// DefaultDBPath returns the history database location for a profile
// namespace, next to its settings document.
func DefaultDBPath(savedDir, namespace string) string {
	return filepath.Join(savedDir, namespace, historyFileName)
}

func (c Config) Validate() error {
	errFactory := errors.New()

	// The path only matters when recording is on.
	if c.Enabled && c.DBPath == "" {
		return errFactory.New(ErrInvalidDBPath)
	}

	return nil
}
