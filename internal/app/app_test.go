package app_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"uniseq/internal/adapters/alphabet"
	"uniseq/internal/adapters/xmldoc"
	"uniseq/internal/app"
	"uniseq/internal/core/domain"
)

const recordXML = `<uniprot>
  <entry dataset="Swiss-Prot">
    <accession>P12345</accession>
    <accession>Q9H400</accession>
    <name>TEST_HUMAN</name>
    <protein>
      <recommendedName>
        <fullName>Test protein</fullName>
        <shortName>TP</shortName>
      </recommendedName>
      <alternativeName>
        <fullName>Alternative test protein</fullName>
      </alternativeName>
    </protein>
    <gene>
      <name type="primary">TST1</name>
    </gene>
    <organism>
      <name type="scientific">Homo sapiens</name>
    </organism>
    <keyword id="KW-0002">3D-structure</keyword>
    <keyword id="KW-0963">Cytoplasm</keyword>
    <dbReference type="GO" id="GO:0005737"/>
    <dbReference type="PDB" id="1ABC"/>
    <dbReference type="GO" id="GO:0005515"/>
    <sequence length="20">MSKVLAVLPGRSTEVQAAWK</sequence>
  </entry>
</uniprot>`

const otherXML = `<uniprot>
  <entry>
    <accession>Q9H400</accession>
    <name>OTHER_HUMAN</name>
    <organism><name>Homo sapiens</name></organism>
    <sequence>MSKV</sequence>
  </entry>
</uniprot>`

// mapFetcher serves canned records keyed by accession.
type mapFetcher struct {
	mu      sync.Mutex
	records map[domain.Accession][]byte
	calls   int
}

func (f *mapFetcher) Fetch(_ context.Context, accession domain.Accession) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	data, ok := f.records[accession]
	if !ok {
		return nil, domain.ErrFetchFailed
	}
	return data, nil
}

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func newTestApp(t *testing.T, records map[domain.Accession][]byte) (*app.App, *mapFetcher, *domain.Settings) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	fetcher := &mapFetcher{records: records}
	settings := domain.NewSettings()
	a := app.New(fetcher, xmldoc.NewParser(), alphabet.AminoAcid(), nopLogger{}, settings)
	return a, fetcher, settings
}

func TestApp_Fetch(t *testing.T) {
	t.Run("single accession", func(t *testing.T) {
		a, fetcher, _ := newTestApp(t, map[domain.Accession][]byte{
			"P12345": []byte(recordXML),
		})

		var out bytes.Buffer
		err := a.Fetch(context.Background(), []string{"P12345"}, app.Options{Out: &out})
		require.NoError(t, err)
		assert.Equal(t, 1, fetcher.calls)

		g := goldie.New(t)
		g.Assert(t, "fetch_single", out.Bytes())
	})

	t.Run("multiple accessions keep input order", func(t *testing.T) {
		a, _, _ := newTestApp(t, map[domain.Accession][]byte{
			"P12345": []byte(recordXML),
			"Q9H400": []byte(otherXML),
		})

		var out bytes.Buffer
		err := a.Fetch(context.Background(), []string{"Q9H400", "P12345"}, app.Options{Out: &out})
		require.NoError(t, err)

		first := strings.Index(out.String(), ">OTHER_HUMAN")
		second := strings.Index(out.String(), ">TEST_HUMAN")
		require.GreaterOrEqual(t, first, 0)
		require.Greater(t, second, first)
	})

	t.Run("lower-case input resolves the same record", func(t *testing.T) {
		a, _, _ := newTestApp(t, map[domain.Accession][]byte{
			"P12345": []byte(recordXML),
		})

		var out bytes.Buffer
		err := a.Fetch(context.Background(), []string{"p12345"}, app.Options{Out: &out})
		require.NoError(t, err)
		assert.Contains(t, out.String(), ">TEST_HUMAN")
	})

	t.Run("invalid accession fails without fetching", func(t *testing.T) {
		a, fetcher, _ := newTestApp(t, map[domain.Accession][]byte{
			"P12345": []byte(recordXML),
		})

		var out bytes.Buffer
		err := a.Fetch(context.Background(), []string{"12345"}, app.Options{Out: &out})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidAccession))
		assert.Equal(t, 0, fetcher.calls)
		assert.Empty(t, out.String())
	})

	t.Run("one failing accession fails the batch", func(t *testing.T) {
		a, _, _ := newTestApp(t, map[domain.Accession][]byte{
			"P12345": []byte(recordXML),
		})

		var out bytes.Buffer
		err := a.Fetch(context.Background(), []string{"P12345", "P99999"}, app.Options{Out: &out})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrFetchFailed))
		assert.Empty(t, out.String())
	})

	t.Run("long sequences wrap at sixty columns", func(t *testing.T) {
		long := strings.Repeat("MSKVLAVLPG", 7)
		record := `<uniprot><entry><name>LONG_TEST</name><sequence>` + long + `</sequence></entry></uniprot>`
		a, _, _ := newTestApp(t, map[domain.Accession][]byte{
			"P12345": []byte(record),
		})

		var out bytes.Buffer
		err := a.Fetch(context.Background(), []string{"P12345"}, app.Options{Out: &out})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, ">LONG_TEST", lines[0])
		assert.Len(t, lines[1], 60)
		assert.Len(t, lines[2], 10)
	})

	t.Run("nameless record falls back to the accession", func(t *testing.T) {
		record := `<uniprot><entry><sequence>MSKV</sequence></entry></uniprot>`
		a, _, _ := newTestApp(t, map[domain.Accession][]byte{
			"P12345": []byte(record),
		})

		var out bytes.Buffer
		err := a.Fetch(context.Background(), []string{"p12345"}, app.Options{Out: &out})
		require.NoError(t, err)
		assert.Contains(t, out.String(), ">P12345\n")
	})
}

func TestApp_Info(t *testing.T) {
	t.Run("renders metadata summary", func(t *testing.T) {
		a, _, _ := newTestApp(t, map[domain.Accession][]byte{
			"P12345": []byte(recordXML),
		})

		var out bytes.Buffer
		err := a.Info(context.Background(), "P12345", app.Options{Out: &out})
		require.NoError(t, err)

		g := goldie.New(t)
		g.Assert(t, "info_full", out.Bytes())
	})

	t.Run("sparse record omits empty fields", func(t *testing.T) {
		record := `<uniprot><entry><sequence>MSKV</sequence></entry></uniprot>`
		a, _, _ := newTestApp(t, map[domain.Accession][]byte{
			"P12345": []byte(record),
		})

		var out bytes.Buffer
		err := a.Info(context.Background(), "P12345", app.Options{Out: &out})
		require.NoError(t, err)

		g := goldie.New(t)
		g.Assert(t, "info_sparse", out.Bytes())
	})

	t.Run("invalid accession", func(t *testing.T) {
		a, _, _ := newTestApp(t, nil)

		var out bytes.Buffer
		err := a.Info(context.Background(), "not-an-accession", app.Options{Out: &out})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidAccession))
	})
}

func TestApp_Options(t *testing.T) {
	a, _, settings := newTestApp(t, map[domain.Accession][]byte{
		"P12345": []byte(recordXML),
	})

	var out bytes.Buffer
	err := a.Fetch(context.Background(), []string{"P12345"}, app.Options{
		BaseURL:  "http://mirror.test",
		CacheDir: "/tmp/uniseq-cache",
		Out:      &out,
	})
	require.NoError(t, err)

	assert.Equal(t, "http://mirror.test", settings.BaseURL())
	assert.Equal(t, "/tmp/uniseq-cache", settings.CacheDir())
}
