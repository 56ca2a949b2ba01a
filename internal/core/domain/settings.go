package domain

import (
	"sync"
	"time"
)

// Defaults for the remote source configuration.
const (
	// DefaultBaseURL is the load-balanced UniProt endpoint.
	DefaultBaseURL = "https://www.uniprot.org"
	// DefaultUserAgent identifies the client to the remote source.
	DefaultUserAgent = "uniseq"
	// DefaultTimeout bounds both connecting and reading a response.
	DefaultTimeout = 5000 * time.Millisecond
	// DefaultAttempts is the fetch attempt budget per accession.
	DefaultAttempts = 5
)

// Filesystem permissions for cache files and directories.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)

// Settings is the shared remote-source configuration. One instance is built
// at startup and handed by reference to every component that needs it.
// Reads and the rare operational writes may come from different goroutines,
// so access goes through a mutex.
type Settings struct {
	mu        sync.RWMutex
	baseURL   string
	cacheDir  string
	userAgent string
	timeout   time.Duration
	attempts  int
	jsonLogs  bool
}

// NewSettings returns settings populated with defaults and no cache directory.
func NewSettings() *Settings {
	return &Settings{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
		attempts:  DefaultAttempts,
	}
}

// BaseURL returns the remote base URL.
func (s *Settings) BaseURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseURL
}

// SetBaseURL replaces the remote base URL. Empty values are ignored.
func (s *Settings) SetBaseURL(u string) {
	if u == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseURL = u
}

// CacheDir returns the cache directory, or "" when caching is disabled.
func (s *Settings) CacheDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cacheDir
}

// SetCacheDir enables caching under dir. An empty dir disables caching.
func (s *Settings) SetCacheDir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cacheDir = dir
}

// UserAgent returns the client identifier sent with every request.
func (s *Settings) UserAgent() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userAgent
}

// SetUserAgent replaces the client identifier. Empty values are ignored.
func (s *Settings) SetUserAgent(ua string) {
	if ua == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userAgent = ua
}

// Timeout returns the connect/read timeout.
func (s *Settings) Timeout() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timeout
}

// SetTimeout replaces the connect/read timeout. Non-positive values are ignored.
func (s *Settings) SetTimeout(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeout = d
}

// Attempts returns the fetch attempt budget.
func (s *Settings) Attempts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attempts
}

// SetAttempts replaces the fetch attempt budget. Non-positive values are ignored.
func (s *Settings) SetAttempts(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = n
}

// JSONLogs reports whether logs should be emitted as JSON.
func (s *Settings) JSONLogs() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jsonLogs
}

// SetJSONLogs switches log output between JSON and pretty mode.
func (s *Settings) SetJSONLogs(enable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jsonLogs = enable
}
