package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// readFile reads and unmarshals one configuration file. A missing file is
// reported as fs.ErrNotExist so callers can fall back to defaults.
func readFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the working directory or an explicit flag
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.Wrap(err, ErrConfigReadFailed.Error())
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, ErrConfigParseFailed.Error())
	}
	return &file, nil
}
