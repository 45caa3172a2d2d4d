package pid

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mutker/gamectl/internal/errors"
)

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/var/lib/gamectl", "gamectl.pid"), Path("/var/lib/gamectl"))
}

func TestAcquireWritesCurrentPid(t *testing.T) {
	path := Path(t.TempDir())

	require.NoError(t, Acquire(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data))
}

func TestAcquireCreatesSavedDirectory(t *testing.T) {
	path := Path(filepath.Join(t.TempDir(), "nested", "saved"))

	require.NoError(t, Acquire(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestAcquireFailsWhileHeld(t *testing.T) {
	path := Path(t.TempDir())

	require.NoError(t, Acquire(path))

	err := Acquire(path)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrAlreadyRunning))
}

func TestAcquireOverwritesStalePidfile(t *testing.T) {
	path := Path(t.TempDir())
	require.NoError(t, os.WriteFile(path, []byte("99999999"), 0o600))

	require.NoError(t, Acquire(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data))
}

func TestAcquireOverwritesCorruptPidfile(t *testing.T) {
	path := Path(t.TempDir())
	require.NoError(t, os.WriteFile(path, []byte("not a pid"), 0o600))

	require.NoError(t, Acquire(path))
}

func TestReleaseRemovesPidfile(t *testing.T) {
	path := Path(t.TempDir())

	require.NoError(t, Acquire(path))
	require.NoError(t, Release(path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Lock can be taken again once released.
	assert.NoError(t, Acquire(path))
}

func TestReleaseMissingFileIsNoop(t *testing.T) {
	assert.NoError(t, Release(Path(t.TempDir())))
}
