package ports

import "uniseq/internal/core/domain"

// SettingsLoader loads the shared remote-source settings.
type SettingsLoader interface {
	// Load reads the configuration file if present and returns settings.
	// A missing file yields defaults, not an error.
	Load() (*domain.Settings, error)
}
