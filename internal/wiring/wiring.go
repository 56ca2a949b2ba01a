// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "uniseq/internal/adapters/alphabet"
	_ "uniseq/internal/adapters/config"
	_ "uniseq/internal/adapters/logger"
	_ "uniseq/internal/adapters/uniprot"
	_ "uniseq/internal/adapters/xmldoc"
	// Register app nodes.
	_ "uniseq/internal/app"
)
