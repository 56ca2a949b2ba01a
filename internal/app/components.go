package app

import (
	"uniseq/internal/core/domain"
	"uniseq/internal/core/ports"
)

// Components bundles the wired application pieces handed to the CLI.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings *domain.Settings
}
