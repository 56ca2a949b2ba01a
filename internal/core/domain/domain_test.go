package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"uniseq/internal/core/domain"
)

func TestCompound_EqualsIgnoreCase(t *testing.T) {
	a := domain.Compound{Value: "a"}
	upper := domain.Compound{Value: "A"}
	other := domain.Compound{Value: "G"}

	assert.True(t, a.EqualsIgnoreCase(upper))
	assert.True(t, upper.EqualsIgnoreCase(a))
	assert.False(t, a.EqualsIgnoreCase(other))
}

func TestSettings_Defaults(t *testing.T) {
	s := domain.NewSettings()

	assert.Equal(t, "https://www.uniprot.org", s.BaseURL())
	assert.Equal(t, "", s.CacheDir())
	assert.Equal(t, 5000*time.Millisecond, s.Timeout())
	assert.Equal(t, 5, s.Attempts())
	assert.False(t, s.JSONLogs())
}

func TestSettings_InvalidValuesIgnored(t *testing.T) {
	s := domain.NewSettings()

	s.SetBaseURL("")
	s.SetTimeout(0)
	s.SetAttempts(-1)
	s.SetUserAgent("")

	assert.Equal(t, "https://www.uniprot.org", s.BaseURL())
	assert.Equal(t, 5000*time.Millisecond, s.Timeout())
	assert.Equal(t, 5, s.Attempts())
	assert.Equal(t, "uniseq", s.UserAgent())
}

func TestSettings_Overrides(t *testing.T) {
	s := domain.NewSettings()

	s.SetBaseURL("http://uniprot.test")
	s.SetCacheDir("/tmp/cache")
	s.SetAttempts(2)

	assert.Equal(t, "http://uniprot.test", s.BaseURL())
	assert.Equal(t, "/tmp/cache", s.CacheDir())
	assert.Equal(t, 2, s.Attempts())

	// Empty cache dir disables caching again.
	s.SetCacheDir("")
	assert.Equal(t, "", s.CacheDir())
}

func TestDBReferences_InsertionOrder(t *testing.T) {
	refs := domain.NewDBReferences()
	refs.Add(domain.DBReference{Type: "GO", ID: "GO:0005576"})
	refs.Add(domain.DBReference{Type: "PDB", ID: "1ABC"})
	refs.Add(domain.DBReference{Type: "GO", ID: "GO:0005737"})

	assert.Equal(t, []string{"GO", "PDB"}, refs.Types())
	assert.Len(t, refs.ByType("GO"), 2)
	assert.Len(t, refs.ByType("PDB"), 1)
	assert.Equal(t, 3, refs.Len())
	assert.Empty(t, refs.ByType("EMBL"))
}
