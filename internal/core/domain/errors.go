package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidAccession is returned when an identifier does not match any known accession pattern.
	ErrInvalidAccession = zerr.New("accession does not comply with the UniProt accession pattern")

	// ErrFetchFailed is returned when all fetch attempts against the remote source are exhausted.
	ErrFetchFailed = zerr.New("failed to fetch accession from the remote source")

	// ErrCyclicRedirect is returned when a redirect points back at the URL being fetched.
	ErrCyclicRedirect = zerr.New("cyclic redirect detected")

	// ErrCacheReadFailed is returned when a cache file exists but cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read record from cache")

	// ErrCacheWriteFailed is returned when a fetched record cannot be written back to the cache.
	ErrCacheWriteFailed = zerr.New("failed to write record to cache")

	// ErrRecordParseFailed is returned when fetched bytes cannot be parsed into a record.
	ErrRecordParseFailed = zerr.New("failed to parse record XML")

	// ErrCompoundNotFound is returned when a substring of a sequence resolves to no alphabet compound.
	ErrCompoundNotFound = zerr.New("compound not found in alphabet")

	// ErrPositionOutOfRange is returned on indexed access outside [1, length].
	ErrPositionOutOfRange = zerr.New("position out of range")

	// ErrCountingUnsupported is returned by compound counting, which is not implemented.
	ErrCountingUnsupported = zerr.New("compound counting is not supported")

	// ErrElementNotFound is returned when a required child element is absent.
	ErrElementNotFound = zerr.New("element not found")

	// ErrAmbiguousElement is returned when a single-element lookup matches more than one child.
	ErrAmbiguousElement = zerr.New("ambiguous element lookup")
)

// FetchStatusError reports a fetch that exhausted its attempt budget.
// StatusCodes holds the observed HTTP status codes in attempt order.
type FetchStatusError struct {
	URL         string
	StatusCodes []string
}

// Error implements the error interface.
func (e *FetchStatusError) Error() string {
	return fmt.Sprintf("couldn't fetch %s, status codes on %d attempts: %v", e.URL, len(e.StatusCodes), e.StatusCodes)
}

// Unwrap makes the error match ErrFetchFailed via errors.Is.
func (e *FetchStatusError) Unwrap() error {
	return ErrFetchFailed
}

// CompoundNotFoundError reports the substring and 1-based position that
// failed to resolve against the alphabet during tokenization.
type CompoundNotFoundError struct {
	Substring string
	Position  int
}

// Error implements the error interface.
func (e *CompoundNotFoundError) Error() string {
	return fmt.Sprintf("compound %q not found at position %d", e.Substring, e.Position)
}

// Unwrap makes the error match ErrCompoundNotFound via errors.Is.
func (e *CompoundNotFoundError) Unwrap() error {
	return ErrCompoundNotFound
}
