// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"uniseq/internal/core/domain"
)

// RecordFetcher resolves an accession to the raw bytes of its record.
type RecordFetcher interface {
	// Fetch returns the record bytes for the accession, consulting any local
	// cache before the remote source. The returned bytes are ready for
	// parsing; namespace declarations have already been stripped.
	Fetch(ctx context.Context, accession domain.Accession) ([]byte, error)
}
