// Package uniprot implements the ports.RecordFetcher port against the
// UniProt REST endpoint, with a local XML cache and bounded retry.
package uniprot

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"go.trai.ch/zerr"
	"uniseq/internal/core/domain"
	"uniseq/internal/core/ports"
)

// maxRedirects bounds multi-hop redirect chains. Single-hop cycles are
// detected exactly; longer cycles hit this ceiling.
const maxRedirects = 10

// Fetcher implements ports.RecordFetcher with cache-first resolution.
type Fetcher struct {
	settings *domain.Settings
	client   *http.Client
	logger   ports.Logger
}

// NewFetcher creates a Fetcher reading its base URL, cache directory,
// timeout and attempt budget from the shared settings.
func NewFetcher(settings *domain.Settings, logger ports.Logger) *Fetcher {
	return NewFetcherWithClient(settings, logger, &http.Client{
		// Redirects are followed manually so Set-Cookie values survive
		// across hops and redirect cycles can be detected.
		CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		},
	})
}

// NewFetcherWithClient creates a Fetcher with a custom http client (used for testing).
// The client must not follow redirects on its own.
func NewFetcherWithClient(settings *domain.Settings, logger ports.Logger, client *http.Client) *Fetcher {
	return &Fetcher{
		settings: settings,
		client:   client,
		logger:   logger,
	}
}

// Fetch resolves an accession to record bytes, consulting the cache first
// and falling back to the remote source. A successful remote fetch is
// written back to the cache when a cache directory is configured.
func (f *Fetcher) Fetch(ctx context.Context, accession domain.Accession) ([]byte, error) {
	if dir := f.settings.CacheDir(); dir != "" {
		data, err := f.readCache(dir, accession)
		if err != nil {
			return nil, err
		}
		if len(data) > 0 {
			return stripDefaultNamespace(data), nil
		}
	}

	fetchURL := f.settings.BaseURL() + "/uniprot/" + strings.ToUpper(accession.String()) + ".xml"
	f.logger.Info("loading " + fetchURL)

	body, err := f.fetchRemote(ctx, fetchURL)
	if err != nil {
		return nil, err
	}
	body = stripDefaultNamespace(body)

	if dir := f.settings.CacheDir(); dir != "" {
		if err := f.writeCache(dir, accession, body); err != nil {
			return nil, err
		}
	}

	return body, nil
}

// fetchRemote performs up to the configured number of attempts against the
// remote source. Non-2xx responses consume an attempt; transport errors and
// cyclic redirects are fatal immediately.
func (f *Fetcher) fetchRemote(ctx context.Context, fetchURL string) ([]byte, error) {
	attempts := f.settings.Attempts()
	statusCodes := make([]string, 0, attempts)

	for attempt := 0; attempt < attempts; attempt++ {
		resp, err := f.openFollowingRedirects(ctx, fetchURL)
		if err != nil {
			if errors.Is(err, domain.ErrCyclicRedirect) {
				return nil, err
			}
			return nil, zerr.Wrap(err, domain.ErrFetchFailed.Error())
		}

		if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
			body, readErr := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			if readErr != nil {
				return nil, zerr.Wrap(readErr, domain.ErrFetchFailed.Error())
			}
			return body, nil
		}

		statusCodes = append(statusCodes, strconv.Itoa(resp.StatusCode))
		_ = resp.Body.Close()
	}

	return nil, &domain.FetchStatusError{URL: fetchURL, StatusCodes: statusCodes}
}

// openFollowingRedirects issues a GET and follows redirects manually,
// threading Set-Cookie values from each redirect response into the follow-up
// request. A redirect target equal to the current URL is a cyclic redirect.
func (f *Fetcher) openFollowingRedirects(ctx context.Context, fetchURL string) (*http.Response, error) {
	current := fetchURL
	cookie := ""

	for redirects := 0; ; redirects++ {
		if redirects > maxRedirects {
			return nil, zerr.With(domain.ErrCyclicRedirect, "redirects", redirects)
		}

		reqCtx, cancel := context.WithTimeout(ctx, f.settings.Timeout())
		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, current, nil)
		if err != nil {
			cancel()
			return nil, err
		}
		req.Header.Set("User-Agent", f.settings.UserAgent())
		if cookie != "" {
			req.Header.Set("Cookie", cookie)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			cancel()
			return nil, err
		}

		switch resp.StatusCode {
		case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther:
			target := resp.Header.Get("Location")
			if c := resp.Header.Get("Set-Cookie"); c != "" {
				cookie = c
			}
			_ = resp.Body.Close()
			cancel()

			if target == current {
				return nil, zerr.With(domain.ErrCyclicRedirect, "url", target)
			}
			next, resolveErr := resolveRedirect(current, target)
			if resolveErr != nil {
				return nil, resolveErr
			}
			if next == current {
				return nil, zerr.With(domain.ErrCyclicRedirect, "url", next)
			}
			f.logger.Info("redirecting from " + current + " to " + next)
			current = next
		default:
			// The caller owns the body; release the timeout once it is read.
			resp.Body = &cancelOnCloseBody{ReadCloser: resp.Body, cancel: cancel}
			return resp, nil
		}
	}
}

// resolveRedirect resolves a possibly relative Location header against the
// URL that produced it.
func resolveRedirect(current, target string) (string, error) {
	base, err := url.Parse(current)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}
	ref, err := url.Parse(target)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}
	return base.ResolveReference(ref).String(), nil
}

// cancelOnCloseBody ties a request-scoped timeout to the response body.
type cancelOnCloseBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelOnCloseBody) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}

// readCache returns the cached bytes for an accession. A missing or empty
// file is a cache miss (nil, nil); any other read failure is local
// corruption and propagates immediately.
func (f *Fetcher) readCache(dir string, accession domain.Accession) ([]byte, error) {
	path := cachePath(dir, accession)
	data, err := os.ReadFile(path) //nolint:gosec // Path is built from a validated accession under the configured cache dir
	if err != nil {
		// ENOTDIR means a path component is not a directory, so the
		// entry cannot exist either.
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}
	return data, nil
}

// writeCache stores fetched bytes, overwriting any existing entry. The write
// goes through a temp file and rename so readers never see partial content.
func (f *Fetcher) writeCache(dir string, accession domain.Accession, data []byte) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, "uniprot-*.xml")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	tmpName := tmp.Name()
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := os.Rename(tmpName, cachePath(dir, accession)); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	return nil
}

// cachePath returns the cache file for an accession.
func cachePath(dir string, accession domain.Accession) string {
	return filepath.Join(dir, accession.String()+".xml")
}

// stripDefaultNamespace excises the default xmlns declaration from the root
// element so tag-based lookups need no namespace awareness. The excision is
// textual and removes everything from "xmlns=" up to the closing ">" of the
// element tag, mirroring the upstream behavior.
func stripDefaultNamespace(data []byte) []byte {
	idx := bytes.Index(data, []byte("xmlns="))
	if idx == -1 {
		return data
	}
	end := bytes.IndexByte(data[idx:], '>')
	if end == -1 {
		return data
	}
	out := make([]byte, 0, len(data)-end)
	out = append(out, data[:idx]...)
	out = append(out, data[idx+end:]...)
	return out
}
