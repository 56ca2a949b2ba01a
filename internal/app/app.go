// Package app implements the application layer for uniseq.
package app

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"
	"uniseq/internal/core/domain"
	"uniseq/internal/core/ports"
	"uniseq/internal/sequence"
)

// App represents the main application logic.
type App struct {
	fetcher  ports.RecordFetcher
	parser   ports.DocumentParser
	alphabet domain.Alphabet
	logger   ports.Logger
	settings *domain.Settings
}

// New creates a new App instance.
func New(
	fetcher ports.RecordFetcher,
	parser ports.DocumentParser,
	alphabet domain.Alphabet,
	logger ports.Logger,
	settings *domain.Settings,
) *App {
	return &App{
		fetcher:  fetcher,
		parser:   parser,
		alphabet: alphabet,
		logger:   logger,
		settings: settings,
	}
}

// Options carries per-invocation overrides of the shared settings.
type Options struct {
	// BaseURL overrides the remote base URL when non-empty.
	BaseURL string
	// CacheDir overrides the cache directory when non-empty.
	CacheDir string
	// Out receives command output; defaults handled by the CLI layer.
	Out io.Writer
}

// apply copies the overrides into the shared settings.
func (a *App) apply(opts Options) {
	a.settings.SetBaseURL(opts.BaseURL)
	if opts.CacheDir != "" {
		a.settings.SetCacheDir(opts.CacheDir)
	}
}

// Fetch retrieves one proxy sequence per accession, in parallel, and writes
// them as FASTA to opts.Out in input order. The first construction error
// cancels the remaining fetches.
func (a *App) Fetch(ctx context.Context, accessions []string, opts Options) error {
	a.apply(opts)

	sequences := make([]*sequence.ProxySequence, len(accessions))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range accessions {
		g.Go(func() error {
			seq, err := sequence.New(gctx, id, a.alphabet, a.fetcher, a.parser, a.logger)
			if err != nil {
				return err
			}
			sequences[i] = seq
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, seq := range sequences {
		if err := writeFasta(opts.Out, accessions[i], seq); err != nil {
			return err
		}
	}
	return nil
}

// Info retrieves one proxy sequence and writes a metadata summary to opts.Out.
func (a *App) Info(ctx context.Context, accession string, opts Options) error {
	a.apply(opts)

	seq, err := sequence.New(ctx, accession, a.alphabet, a.fetcher, a.parser, a.logger)
	if err != nil {
		return err
	}
	return renderInfo(opts.Out, accession, seq)
}
