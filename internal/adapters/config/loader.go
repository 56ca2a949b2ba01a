// Package config provides the configuration loader for uniseq.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
	"uniseq/internal/core/domain"
	"uniseq/internal/core/ports"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "uniseq.yaml"

// ErrConfigReadFailed is returned when an existing config file cannot be read.
var ErrConfigReadFailed = zerr.New("failed to read config file")

// ErrConfigParseFailed is returned when the config file is not valid YAML.
var ErrConfigParseFailed = zerr.New("failed to parse config file")

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	// Path overrides the default lookup when non-empty.
	Path string
}

// NewLoader creates a Loader using the default lookup.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration file and returns settings. A missing file
// yields defaults.
func (l *Loader) Load() (*domain.Settings, error) {
	settings := domain.NewSettings()

	path := l.Path
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return settings, nil
		}
		path = filepath.Join(cwd, FileName)
	}

	file, err := readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, err
	}

	settings.SetBaseURL(file.BaseURL)
	settings.SetCacheDir(file.CacheDir)
	settings.SetUserAgent(file.UserAgent)
	settings.SetTimeout(time.Duration(file.TimeoutMS) * time.Millisecond)
	settings.SetAttempts(file.Attempts)
	settings.SetJSONLogs(file.JSONLogs)

	return settings, nil
}

var _ ports.SettingsLoader = (*Loader)(nil)
