// Package persist is the JSON codec and file I/O for the settings document.
// Decoding always merges over the documented defaults and clamps, so a
// partial, stale or hand-edited file yields a complete in-range Settings.
package persist

import (
	"encoding/json"
	"os"
	"path/filepath"

	"codeberg.org/mutker/gamectl/internal/errors"
	"codeberg.org/mutker/gamectl/internal/settings"
)

const fileName = "Settings.json"

// Path returns the settings file location for a profile namespace:
// <savedDir>/<namespace>/Settings.json.
func Path(savedDir, namespace string) string {
	return filepath.Join(savedDir, namespace, fileName)
}

// Encode serializes s as an indented JSON document.
func Encode(s settings.Settings) ([]byte, error) {
	errFactory := errors.New()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrSettingsSerialize, err)
	}

	return data, nil
}

// Decode parses a settings document. Fields absent from the document keep
// their defaults, and every decoded scalar is clamped into its bounds.
func Decode(data []byte) (settings.Settings, error) {
	errFactory := errors.New()

	s := settings.Defaults()
	if err := json.Unmarshal(data, &s); err != nil {
		return settings.Settings{}, errFactory.Wrap(errors.ErrSettingsParse, err)
	}

	return settings.Clamped(s), nil
}

// Save writes the document to path, creating parent directories as needed.
func Save(path string, s settings.Settings) error {
	errFactory := errors.New()

	data, err := Encode(s)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errFactory.Wrap(errors.ErrSettingsDirCreate, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errFactory.Wrap(errors.ErrSettingsWrite, err)
	}

	return nil
}

// Load reads and decodes the document at path. A missing file reports
// ErrSettingsNotFound so callers can fall back to defaults; any other
// failure keeps its distinct code.
func Load(path string) (settings.Settings, error) {
	errFactory := errors.New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings.Settings{}, errFactory.Wrap(errors.ErrSettingsNotFound, err)
		}

		return settings.Settings{}, errFactory.Wrap(errors.ErrSettingsRead, err)
	}

	return Decode(data)
}
